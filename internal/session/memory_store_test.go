package session

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *MemoryStore {
	t.Helper()
	store := NewMemoryStore(ttl, zerolog.Nop())
	t.Cleanup(store.Close)
	return store
}

func TestMemoryStore_GetUnknownSession(t *testing.T) {
	store := newTestStore(t, time.Hour)

	data, err := store.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	data := NewData()
	data.Cart[5] = 2
	data.Cart[7] = 1

	require.NoError(t, store.Save(ctx, "sess-1", data))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, map[int]int{5: 2, 7: 1}, got.Cart)
	assert.Equal(t, 3, got.CartCount())
}

func TestMemoryStore_CopiesDoNotAlias(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	data := NewData()
	data.Cart[5] = 1
	require.NoError(t, store.Save(ctx, "sess-1", data))

	// Mutating the caller's map after Save must not leak into the store.
	data.Cart[5] = 99

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Cart[5])

	// Mutating a returned copy must not leak either.
	got.Cart[5] = 42
	again, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Cart[5])
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := newTestStore(t, 10*time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	data := NewData()
	data.Cart[1] = 1
	require.NoError(t, store.Save(ctx, "sess-1", data))

	// Still fresh just before the TTL.
	current = current.Add(9 * time.Minute)
	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	// Expired after the TTL.
	current = current.Add(2 * time.Minute)
	got, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_SweepRemovesExpired(t *testing.T) {
	store := newTestStore(t, 10*time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Save(ctx, "old", NewData()))
	current = current.Add(20 * time.Minute)
	require.NoError(t, store.Save(ctx, "fresh", NewData()))

	store.removeExpired()

	store.mu.RLock()
	_, oldExists := store.entries["old"]
	_, freshExists := store.entries["fresh"]
	store.mu.RUnlock()

	assert.False(t, oldExists)
	assert.True(t, freshExists)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", NewData()))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent session is not an error.
	assert.NoError(t, store.Delete(ctx, "sess-1"))
}

func TestData_ToggleWishlist(t *testing.T) {
	data := NewData()

	assert.True(t, data.ToggleWishlist(3))
	assert.True(t, data.HasWishlisted(3))

	assert.True(t, data.ToggleWishlist(5))
	assert.Equal(t, []int{3, 5}, data.Wishlist)

	assert.False(t, data.ToggleWishlist(3))
	assert.False(t, data.HasWishlisted(3))
	assert.Equal(t, []int{5}, data.Wishlist)
}

func TestData_CartCount(t *testing.T) {
	data := NewData()
	assert.Equal(t, 0, data.CartCount())

	data.Cart[5] = 2
	data.Cart[7] = 3
	assert.Equal(t, 5, data.CartCount())
}
