package game

import (
	"context"

	"silverdollar/internal/model"
)

// Get возвращает текущее состояние партии
func (s *serv) Get(ctx context.Context, id string) (*model.Game, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	var res *model.Game
	err = s.repo.View(ctx, id, owned(uid, func(g *model.GameSession) error {
		res = toGame(g)
		return nil
	}))
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return res, nil
}

// CheckMove проверяет ход без изменения поля
func (s *serv) CheckMove(ctx context.Context, req model.Move) (*model.MoveCheck, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	res := &model.MoveCheck{
		GameID:   req.GameID,
		Start:    req.Start,
		Distance: req.Distance,
	}
	err = s.repo.View(ctx, req.GameID, owned(uid, func(g *model.GameSession) error {
		res.Legal = g.Strip.IsLegalMove(req.Start, req.Distance)
		return nil
	}))
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return res, nil
}
