package repository

import (
	"context"
	"errors"
	"time"

	"silverdollar/internal/model"
)

var (
	// ErrNotFound - записи нет
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists - запись с таким ключом уже есть
	ErrAlreadyExists = errors.New("already exists")
	// ErrLimitReached - у пользователя уже максимум незавершенных партий
	ErrLimitReached = errors.New("limit reached")
)

// GameRepository хранит живые партии в памяти процесса.
// fn в View/Update выполняется под блокировкой конкретной партии.
// Create проверяет лимит незавершенных партий и вставляет атомарно
type GameRepository interface {
	Create(ctx context.Context, game *model.GameSession, limit int) error
	View(ctx context.Context, id string, fn func(game *model.GameSession) error) error
	Update(ctx context.Context, id string, fn func(game *model.GameSession) error) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID int) int
	DeleteExpired(ctx context.Context, before time.Time) int
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
