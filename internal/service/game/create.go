package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"silverdollar/internal/game/strip"
	"silverdollar/internal/model"
	"silverdollar/internal/repository"
	"silverdollar/internal/service"
	"silverdollar/pkg/random"
)

// Create начинает новую партию со случайной расстановкой монет
func (s *serv) Create(ctx context.Context, req model.NewGame) (*model.Game, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	// Значения по умолчанию из конфига
	squares := req.Squares
	if squares == 0 {
		squares = s.cfg.DefaultSquares()
	}
	coins := req.Coins
	if coins == 0 {
		coins = s.cfg.DefaultCoins()
		if coins >= squares {
			coins = squares / 2
		}
	}

	if squares > s.cfg.MaxSquares() {
		return nil, fmt.Errorf("%w: %d squares exceeds limit %d", service.ErrInvalidGame, squares, s.cfg.MaxSquares())
	}

	seed := req.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return nil, err
		}
	}

	st, err := strip.New(squares, coins, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidGame, err)
	}

	now := s.now()
	session := &model.GameSession{
		ID:        uuid.NewString(),
		UserID:    uid,
		Seed:      seed,
		Strip:     st,
		Turn:      model.FirstPlayer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, session, s.cfg.MaxGamesPerUser()); err != nil {
		if errors.Is(err, repository.ErrLimitReached) {
			return nil, service.ErrTooManyGames
		}
		return nil, err
	}

	s.log.Info("game created",
		"game_id", session.ID,
		"user_id", uid,
		"board", st.String(),
		"seed", seed,
	)

	return toGame(session), nil
}
