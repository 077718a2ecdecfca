package game

import (
	"context"

	"silverdollar/internal/model"
)

// Delete завершает партию и удаляет ее
func (s *serv) Delete(ctx context.Context, id string) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	// Сначала проверяем владельца
	err = s.repo.View(ctx, id, owned(uid, func(*model.GameSession) error { return nil }))
	if err != nil {
		return mapRepoErr(err)
	}

	return mapRepoErr(s.repo.Delete(ctx, id))
}

// DeleteExpired удаляет партии без ходов дольше GameTTL
func (s *serv) DeleteExpired(ctx context.Context) int {
	deleted := s.repo.DeleteExpired(ctx, s.now().Add(-s.cfg.GameTTL()))
	if deleted > 0 {
		s.log.Debug("expired games deleted", "count", deleted)
	}
	return deleted
}
