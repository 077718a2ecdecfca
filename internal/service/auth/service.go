package auth

import (
	"log/slog"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"silverdollar/internal/config"
	"silverdollar/internal/repository"
	"silverdollar/internal/service"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	log       *slog.Logger
	now       func() time.Time
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	log *slog.Logger,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		log:       log,
		now:       time.Now,
	}
}
