package domain

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// KeyValueStore is the durable persistence boundary: whole values under string keys.
// Load returns ErrKeyNotFound for an absent key.
type KeyValueStore interface {
	// Load returns the value stored under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
}
