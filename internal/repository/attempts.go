package repository

import (
	"context"

	"triptix/internal/models"
	"triptix/internal/store"
)

// AttemptsRepository persists the per-email login attempt records.
type AttemptsRepository struct {
	store store.Store
}

func NewAttemptsRepository(s store.Store) *AttemptsRepository {
	return &AttemptsRepository{store: s}
}

// GetAll returns the attempts mapping keyed by email. Absent or
// unreadable state yields an empty map.
func (r *AttemptsRepository) GetAll(ctx context.Context) (map[string]models.LoginAttempts, error) {
	var attempts map[string]models.LoginAttempts
	found, err := store.LoadJSON(ctx, r.store, store.KeyAttempts, &attempts)
	if err != nil {
		return nil, err
	}
	if !found || attempts == nil {
		return map[string]models.LoginAttempts{}, nil
	}
	return attempts, nil
}

// SaveAll replaces the persisted attempts mapping.
func (r *AttemptsRepository) SaveAll(ctx context.Context, attempts map[string]models.LoginAttempts) error {
	return store.SaveJSON(ctx, r.store, store.KeyAttempts, attempts)
}
