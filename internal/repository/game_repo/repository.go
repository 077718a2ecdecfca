package game_repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"silverdollar/internal/model"
	"silverdollar/internal/repository"
)

// Партия со своей блокировкой, чтобы ходы в разных играх не ждали друг друга
type entry struct {
	mtx  sync.RWMutex
	game *model.GameSession
}

// GameRepo - хранилище партий в памяти
type GameRepo struct {
	mtx   sync.RWMutex
	games map[string]*entry
}

// NewGameRepository Конструктор пустого хранилища
func NewGameRepository() *GameRepo {
	return &GameRepo{
		games: make(map[string]*entry),
	}
}

var _ repository.GameRepository = (*GameRepo)(nil)

// Create - сохраняет новую партию, если у пользователя меньше limit незавершенных.
// limit <= 0 - без ограничения
func (r *GameRepo) Create(_ context.Context, game *model.GameSession, limit int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.games[game.ID]; ok {
		return fmt.Errorf("game %s: %w", game.ID, repository.ErrAlreadyExists)
	}
	if limit > 0 && r.countActive(game.UserID) >= limit {
		return fmt.Errorf("user %d: %w", game.UserID, repository.ErrLimitReached)
	}
	r.games[game.ID] = &entry{game: game}
	return nil
}

func (r *GameRepo) get(id string) (*entry, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.games[id]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, repository.ErrNotFound)
	}
	return e, nil
}

// View - чтение партии под read-блокировкой
func (r *GameRepo) View(_ context.Context, id string, fn func(game *model.GameSession) error) error {
	e, err := r.get(id)
	if err != nil {
		return err
	}

	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return fn(e.game)
}

// Update - изменение партии под эксклюзивной блокировкой
func (r *GameRepo) Update(_ context.Context, id string, fn func(game *model.GameSession) error) error {
	e, err := r.get(id)
	if err != nil {
		return err
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()
	return fn(e.game)
}

// Delete - удаляет партию
func (r *GameRepo) Delete(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, repository.ErrNotFound)
	}
	delete(r.games, id)
	return nil
}

// CountByUser - количество незавершенных партий пользователя
func (r *GameRepo) CountByUser(_ context.Context, userID int) int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.countActive(userID)
}

// countActive вызывается под r.mtx. Законченные партии лимит не занимают
func (r *GameRepo) countActive(userID int) int {
	count := 0
	for _, e := range r.games {
		e.mtx.RLock()
		if e.game.UserID == userID && !e.game.Strip.IsGameOver() {
			count++
		}
		e.mtx.RUnlock()
	}
	return count
}

// DeleteExpired - удаляет партии, которые не менялись с before. Возвращает сколько удалено
func (r *GameRepo) DeleteExpired(_ context.Context, before time.Time) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	deleted := 0
	for id, e := range r.games {
		e.mtx.RLock()
		expired := e.game.UpdatedAt.Before(before)
		e.mtx.RUnlock()
		if expired {
			delete(r.games, id)
			deleted++
		}
	}
	return deleted
}
