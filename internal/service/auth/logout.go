package auth

import (
	"context"
	"errors"

	"silverdollar/internal/repository"
	"silverdollar/internal/service"
)

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	err := s.authRepo.DeleteSession(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return service.ErrInvalidSession
	}
	return err
}
