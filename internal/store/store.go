package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Persisted state keys. Each one holds an independently serialized blob
// and independently defaults to absent on first run.
const (
	KeyBookings = "triptix:bookings"
	KeyUser     = "triptix:user"
	KeyAttempts = "triptix:login_attempts"
	KeySession  = "triptix:session"
)

// Store is a whole-value key-value persistence layer. Every Save fully
// replaces the prior value for the key, so callers re-serialize their
// entire collection on each mutation and never need partial-write
// recovery.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config selects and configures the persistence backend.
type Config struct {
	Backend  string // file, postgres or memory
	File     FileConfig
	Postgres PostgresConfig
}

// Open connects the configured backend.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "file", "":
		return NewFileStore(cfg.File.Dir)
	case "postgres":
		return ConnectPostgres(cfg.Postgres)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}

// LoadJSON reads and decodes the value at key into out. An absent key
// or an undecodable value reports found=false; callers must then fall
// back to their empty default and discard out, which may hold a
// partial decode.
func LoadJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, found, err := s.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

// SaveJSON encodes v and fully replaces the value at key.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
