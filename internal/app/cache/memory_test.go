package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s, err := NewMemoryStore(10)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	entry := &Entry{Status: 200, Body: []byte("ok"), CreatedAt: time.Now(), TTL: time.Minute}
	require.NoError(t, s.Set(ctx, "k", entry))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Same(t, entry, got)
}

func TestMemoryStoreLazyExpiry(t *testing.T) {
	s, err := NewMemoryStore(10)
	require.NoError(t, err)
	ctx := context.Background()

	t0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := t0
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", &Entry{CreatedAt: t0, TTL: time.Minute}))

	now = t0.Add(59 * time.Second)
	_, err = s.Get(ctx, "k")
	assert.NoError(t, err)

	now = t0.Add(time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Zero(t, s.Len())
}

func TestMemoryStoreCapacity(t *testing.T) {
	s, err := NewMemoryStore(2)
	require.NoError(t, err)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, s.Set(ctx, k, &Entry{CreatedAt: time.Now(), TTL: time.Hour}))
	}

	assert.Equal(t, 2, s.Len())
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewMemoryStoreRejectsZeroCapacity(t *testing.T) {
	_, err := NewMemoryStore(0)
	assert.Error(t, err)
}
