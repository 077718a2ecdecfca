package converter

import (
	dto "silverdollar/internal/api/dto/game"
	"silverdollar/internal/model"
)

func ToNewGame(req dto.CreateGameRequest) model.NewGame {
	return model.NewGame{
		Squares: req.Squares,
		Coins:   req.Coins,
		Seed:    req.Seed,
	}
}

func ToMove(gameID string, req dto.MoveRequest) model.Move {
	return model.Move{
		GameID:   gameID,
		Start:    req.Start,
		Distance: req.Distance,
	}
}

func ToGameResponse(g model.Game) dto.GameResponse {
	return dto.GameResponse{
		ID:       g.ID,
		Board:    g.Board,
		Squares:  g.Squares,
		Coins:    g.Coins,
		Moves:    g.Moves,
		Turn:     g.Turn,
		GameOver: g.GameOver,
		Winner:   g.Winner,
		Seed:     g.Seed,
	}
}

func ToCheckResponse(c model.MoveCheck) dto.CheckResponse {
	return dto.CheckResponse{
		Start:    c.Start,
		Distance: c.Distance,
		Legal:    c.Legal,
	}
}
