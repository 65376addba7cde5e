package repository

import (
	"context"

	"triptix/internal/models"
	"triptix/internal/store"
)

// SessionRepository persists the logged-in marker of the single
// interactive session.
type SessionRepository struct {
	store store.Store
}

func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// Get returns the current session marker, or nil when nobody is logged in.
func (r *SessionRepository) Get(ctx context.Context) (*models.Session, error) {
	var session models.Session
	found, err := store.LoadJSON(ctx, r.store, store.KeySession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

// Save records the logged-in user.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	return store.SaveJSON(ctx, r.store, store.KeySession, session)
}

// Delete clears the logged-in marker.
func (r *SessionRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeySession)
}
