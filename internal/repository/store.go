// Package repository keeps the booking collections in memory and mirrors them
// wholesale into a domain.KeyValueStore after every mutation.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/retry"
)

// Storage keys of the persisted collections.
const (
	TicketsKey  = "railreserve_tickets"
	OccupiedKey = "railreserve_occupied"
)

// Config holds the options shared by the stores.
type Config struct {
	// Retry applies to every durable save (default: retry.StorageConfig)
	Retry *retry.Config

	// Logger receives load warnings (default: discard)
	Logger *logger.Logger
}

func (c *Config) withDefaults() Config {
	out := Config{Retry: &retry.StorageConfig, Logger: logger.Nop()}
	if c == nil {
		return out
	}
	if c.Retry != nil {
		out.Retry = c.Retry
	}
	if c.Logger != nil {
		out.Logger = c.Logger
	}
	return out
}

// loadJSON decodes the value under key into v. An absent key leaves v
// untouched; undecodable data is reported and v is reset by the caller.
// It returns false when v should be treated as empty.
func loadJSON(ctx context.Context, kv domain.KeyValueStore, key string, v any, log *logger.Logger) (bool, error) {
	data, err := kv.Load(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		log.Debug().Str("key", key).Msg("no stored data, starting empty")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn().Err(err).Str("key", key).Int("bytes", len(data)).Msg("stored data is corrupt, starting empty")
		return false, nil
	}
	return true, nil
}

// encodeJSON marshals v for a later save. Failures wrap domain.ErrStorage.
func encodeJSON(key string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w: %w", key, domain.ErrStorage, err)
	}
	return data, nil
}

// save writes data under key, retrying per cfg.
// Failures wrap domain.ErrStorage.
func save(ctx context.Context, kv domain.KeyValueStore, key string, data []byte, cfg retry.Config) error {
	err := retry.Do(ctx, func() error {
		return kv.Save(ctx, key, data)
	}, cfg)
	if err != nil {
		return fmt.Errorf("save %s: %w: %w", key, domain.ErrStorage, err)
	}
	return nil
}
