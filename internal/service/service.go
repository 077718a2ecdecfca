package service

import (
	"context"
	"errors"

	"silverdollar/internal/model"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameFinished      = errors.New("game is over")
	ErrTooManyGames      = errors.New("too many active games")
	ErrInvalidGame       = errors.New("invalid game parameters")
	ErrUnauthenticated   = errors.New("user id not found in context")
	ErrInvalidCredential = errors.New("invalid login or password")
	ErrUserExists        = errors.New("user already exists")
	ErrInvalidSession    = errors.New("invalid session")
)

type GameService interface {
	Create(ctx context.Context, req model.NewGame) (*model.Game, error)
	Get(ctx context.Context, id string) (*model.Game, error)
	CheckMove(ctx context.Context, req model.Move) (*model.MoveCheck, error)
	Move(ctx context.Context, req model.Move) (*model.Game, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) int
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
