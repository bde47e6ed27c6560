package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(8 * time.Hour)

	token, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	valid, err := store.Valid(ctx, token)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = store.Valid(ctx, "no-such-token")
	require.NoError(t, err)
	assert.False(t, valid)

	require.NoError(t, store.Destroy(ctx, token))
	valid, err = store.Valid(ctx, token)
	require.NoError(t, err)
	assert.False(t, valid)

	// Destroy is idempotent.
	require.NoError(t, store.Destroy(ctx, token))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Millisecond)

	token, err := store.Create(ctx)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	valid, err := store.Valid(ctx, token)
	require.NoError(t, err)
	assert.False(t, valid, "session must expire after its absolute lifetime")
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx)
		require.NoError(t, err)
	}

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, 3, store.Sweep())
	assert.Equal(t, 0, store.Sweep())
}

func TestMemoryStoreEmptyToken(t *testing.T) {
	valid, err := NewMemoryStore(time.Hour).Valid(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, valid)
}
