package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

func TestStore_LoadMissing(t *testing.T) {
	_, err := New().Load(context.Background(), "railreserve_tickets")

	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStore_SaveLoadCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	value := []byte(`[]`)

	require.NoError(t, s.Save(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	got[0] = 'y'
	again, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), again)
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Save(ctx, "k", []byte("one")))
	require.NoError(t, s.Save(ctx, "k", []byte("two")))

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, New().Save(ctx, "k", nil), context.Canceled)
}
