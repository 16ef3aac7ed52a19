package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-reserve/railway-reservation-system/internal/config"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		driver string
		path   string
	}{
		{config.StorageMemory, ""},
		{config.StorageFile, filepath.Join(dir, "files")},
		{config.StorageSQLite, filepath.Join(dir, "db", "reservations.db")},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			kv, closer, err := Open(ctx, tt.driver, tt.path)
			require.NoError(t, err)
			defer closer.Close()

			_, err = kv.Load(ctx, "railreserve_tickets")
			assert.ErrorIs(t, err, domain.ErrKeyNotFound)

			require.NoError(t, kv.Save(ctx, "railreserve_tickets", []byte(`[]`)))
			got, err := kv.Load(ctx, "railreserve_tickets")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
		})
	}
}

func TestOpen_SQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reservations.db")

	kv, closer, err := Open(ctx, config.StorageSQLite, path)
	require.NoError(t, err)
	require.NoError(t, kv.Save(ctx, "railreserve_occupied", []byte(`{"12952|3A|2026-11-02|S1":["A1"]}`)))
	require.NoError(t, closer.Close())

	kv, closer, err = Open(ctx, config.StorageSQLite, path)
	require.NoError(t, err)
	defer closer.Close()

	got, err := kv.Load(ctx, "railreserve_occupied")
	require.NoError(t, err)
	assert.JSONEq(t, `{"12952|3A|2026-11-02|S1":["A1"]}`, string(got))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "redis", "")

	assert.ErrorContains(t, err, `unknown storage driver "redis"`)
}
