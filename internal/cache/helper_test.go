package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupCache(t)
	ctx := context.Background()

	loads := 0
	loader := func(dest *cachedUser) func() error {
		return func() error {
			loads++
			dest.ID = 1
			dest.Name = "Alice"
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &first, UserTTL, loader(&first)))
	assert.Equal(t, 1, loads)
	assert.Equal(t, "Alice", first.Name)

	// Second read comes from the cache without touching the loader.
	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &second, UserTTL, loader(&second)))
	assert.Equal(t, 1, loads)
	assert.Equal(t, first, second)
}

func TestAside_NilClientFallsThrough(t *testing.T) {
	SetClient(nil)

	loads := 0
	var dest cachedUser
	err := Aside(context.Background(), UserKey(1), &dest, UserTTL, func() error {
		loads++
		dest.Name = "Alice"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, loads)
}

func TestAside_CorruptEntryIsDropped(t *testing.T) {
	mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(UserKey(1), "{not json"))

	var dest cachedUser
	err := Aside(ctx, UserKey(1), &dest, UserTTL, func() error {
		dest.ID = 1
		dest.Name = "Fresh"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh", dest.Name)

	// The rewritten entry is valid JSON now.
	raw, err := mr.Get(UserKey(1))
	require.NoError(t, err)
	assert.Contains(t, raw, `"Fresh"`)
}

func TestAside_LoaderErrorNotCached(t *testing.T) {
	mr := setupCache(t)
	ctx := context.Background()

	var dest cachedUser
	err := Aside(ctx, UserKey(1), &dest, UserTTL, func() error {
		return assert.AnError
	})
	assert.Error(t, err)
	assert.False(t, mr.Exists(UserKey(1)))
}

func TestInvalidateUser(t *testing.T) {
	mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(UserKey(1), `{"id":1}`))
	require.NoError(t, mr.Set(UserCountKey, "5"))

	InvalidateUser(ctx, 1)

	assert.False(t, mr.Exists(UserKey(1)))
	// The aggregate count key goes with the user entry.
	assert.False(t, mr.Exists(UserCountKey))
}

func TestAside_TTLApplied(t *testing.T) {
	mr := setupCache(t)
	ctx := context.Background()

	var dest cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &dest, time.Minute, func() error {
		dest.ID = 1
		return nil
	}))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(UserKey(1)))
}
