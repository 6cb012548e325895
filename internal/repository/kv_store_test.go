package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)

	require.NoError(t, store.Set(ctx, "session:a:auth_token", "tok", 0))
	got, err := store.Get(ctx, "session:a:auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", got)

	require.NoError(t, store.Set(ctx, "session:a:user", "{}", 0))
	require.NoError(t, store.Delete(ctx, "session:a:auth_token", "session:a:user", "session:a:dev_user"))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	store.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.Equal(t, 0, store.Len())
}

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	var dest map[string]string
	assert.ErrorIs(t, repo.Get(context.Background(), "ref:admin:scholarships", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(context.Background(), "k", "v", time.Minute))
	assert.NoError(t, repo.DeleteByPattern(context.Background(), "ref:*"))
}

func TestMemoryStoreEvictionKeepsFreshValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "k", "stale", time.Minute))
	now = now.Add(2 * time.Minute)
	// a Set lands between the expired read and the eviction
	require.NoError(t, store.Set(ctx, "k", "fresh", time.Minute))
	store.evictExpired("k")

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)

	now = now.Add(2 * time.Minute)
	store.evictExpired("k")
	assert.Equal(t, 0, store.Len())
}
