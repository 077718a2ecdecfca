package auth

import (
	"context"
	"errors"

	"silverdollar/internal/model"
	"silverdollar/internal/repository"
	"silverdollar/internal/service"
	"silverdollar/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	// Хэш refresh токена из хранилища по sessionID
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", service.ErrInvalidSession
		}
		return "", err
	}

	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", service.ErrInvalidSession
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", service.ErrInvalidSession
		}
		return "", err
	}

	return token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
