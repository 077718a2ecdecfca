package game

import (
	"context"

	"silverdollar/internal/model"
	"silverdollar/internal/service"
)

// Move делает ход текущего игрока.
// Недопустимый ход возвращает strip.ErrIllegalMove вместе с неизмененной партией
func (s *serv) Move(ctx context.Context, req model.Move) (*model.Game, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	var res *model.Game
	err = s.repo.Update(ctx, req.GameID, owned(uid, func(g *model.GameSession) error {
		if g.Strip.IsGameOver() {
			res = toGame(g)
			return service.ErrGameFinished
		}

		if err := g.Strip.ApplyMove(req.Start, req.Distance); err != nil {
			res = toGame(g)
			return err
		}
		g.UpdatedAt = s.now()

		// Кто сделал последний ход, тот и выиграл
		if g.Strip.IsGameOver() {
			g.Winner = g.Turn
			s.log.Info("game over",
				"game_id", g.ID,
				"winner", g.Winner,
				"moves", g.Strip.Moves(),
			)
		} else {
			g.Turn = nextPlayer(g.Turn)
		}

		res = toGame(g)
		return nil
	}))
	if err != nil {
		return res, mapRepoErr(err)
	}
	return res, nil
}
