package auth

import (
	"context"
	"errors"

	"silverdollar/internal/model"
	"silverdollar/internal/repository"
	"silverdollar/internal/service"
	"silverdollar/pkg/pass"
)

func (s *serv) Login(ctx context.Context, user *model.User) (*model.AuthData, error) {
	stored, err := s.userRepo.GetUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrInvalidCredential
		}
		return nil, err
	}

	if !pass.VerifyPassword(stored.Password, user.Password) {
		return nil, service.ErrInvalidCredential
	}

	return s.openSession(ctx, stored)
}
