package repository

import (
	"context"

	"triptix/internal/models"
	"triptix/internal/store"
)

// UserRepository persists the single registered account of the demo.
type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Get returns the stored account, or nil when none has been registered.
func (r *UserRepository) Get(ctx context.Context) (*models.UserAccount, error) {
	var account models.UserAccount
	found, err := store.LoadJSON(ctx, r.store, store.KeyUser, &account)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &account, nil
}

// Save stores the account, overwriting any previous one.
func (r *UserRepository) Save(ctx context.Context, account *models.UserAccount) error {
	return store.SaveJSON(ctx, r.store, store.KeyUser, account)
}
