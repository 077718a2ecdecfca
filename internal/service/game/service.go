package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"silverdollar/internal/config"
	"silverdollar/internal/middleware"
	"silverdollar/internal/model"
	"silverdollar/internal/repository"
	"silverdollar/internal/service"
)

type serv struct {
	cfg  config.GameConfig
	repo repository.GameRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewGameService Создать сервис партий Silver Dollar
func NewGameService(
	cfg config.GameConfig,
	repo repository.GameRepository,
	log *slog.Logger,
) service.GameService {
	return &serv{
		cfg:  cfg,
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func userID(ctx context.Context) (int, error) {
	id, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, service.ErrUnauthenticated
	}
	return id, nil
}

// owned оборачивает fn проверкой владельца: чужая партия выглядит как несуществующая
func owned(userID int, fn func(game *model.GameSession) error) func(game *model.GameSession) error {
	return func(game *model.GameSession) error {
		if game.UserID != userID {
			return service.ErrGameNotFound
		}
		return fn(game)
	}
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return service.ErrGameNotFound
	}
	return err
}

func toGame(g *model.GameSession) *model.Game {
	return &model.Game{
		ID:       g.ID,
		Board:    g.Strip.String(),
		Squares:  g.Strip.Len(),
		Coins:    g.Strip.Coins(),
		Moves:    g.Strip.Moves(),
		Turn:     g.Turn,
		GameOver: g.Strip.IsGameOver(),
		Winner:   g.Winner,
		Seed:     g.Seed,
	}
}

func nextPlayer(turn int) int {
	if turn == model.FirstPlayer {
		return model.SecondPlayer
	}
	return model.FirstPlayer
}
