package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupStore_MarkAndContains(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)
	ctx := context.Background()

	ok, err := store.Contains(ctx, "123")
	require.NoError(t, err)
	assert.False(t, ok)

	isNew, err := store.MarkProcessed(ctx, "123")
	require.NoError(t, err)
	assert.True(t, isNew)

	ok, err = store.Contains(ctx, "123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDedupStore_MarkTwice_SecondIsNoop(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)
	ctx := context.Background()

	isNew, err := store.MarkProcessed(ctx, "456")
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = store.MarkProcessed(ctx, "456")
	require.NoError(t, err)
	assert.False(t, isNew, "second mark of the same id must report already-present")
}

func TestDedupStore_NoTTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)
	ctx := context.Background()

	_, err := store.MarkProcessed(ctx, "789")
	require.NoError(t, err)

	// Processed ids must never age out.
	s.FastForward(365 * 24 * time.Hour)

	ok, err := store.Contains(ctx, "789")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDedupStore_PersistIsNoop(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupStore(client)

	assert.NoError(t, store.Persist())
}
