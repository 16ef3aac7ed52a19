// Package storage selects the durable key-value backend by driver name.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/storage/file"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/storage/memory"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/storage/sqlite"
	"github.com/rail-reserve/railway-reservation-system/internal/config"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the store for driver, one of the config.Storage* names.
// path is the directory of the file driver and the database file of the
// sqlite driver; memory ignores it.
// The closer must be called on shutdown.
func Open(ctx context.Context, driver, path string) (domain.KeyValueStore, io.Closer, error) {
	switch driver {
	case config.StorageMemory:
		return memory.New(), nopCloser{}, nil
	case config.StorageFile:
		s, err := file.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case config.StorageSQLite:
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		s, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
