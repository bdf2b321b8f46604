package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID     uint   `json:"id"`
	Handle string `json:"handle"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			fetches++
			dest.ID = 7
			dest.Handle = "@alice"
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, "user:7", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "@alice", first.Handle)

	// Second call must be served from cache without another fetch.
	var second cachedUser
	require.NoError(t, Aside(ctx, "user:7", &second, time.Minute, func() error {
		fetches++
		return nil
	}))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, uint(7), second.ID)
	assert.Equal(t, "@alice", second.Handle)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	wantErr := errors.New("db down")
	var dest cachedUser
	err := Aside(ctx, "user:8", &dest, time.Minute, func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, mr.Exists("user:8"))
}

func TestAside_CorruptEntryRefetched(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("user:9", "{not json"))

	var dest cachedUser
	require.NoError(t, Aside(ctx, "user:9", &dest, time.Minute, func() error {
		dest.ID = 9
		return nil
	}))
	assert.Equal(t, uint(9), dest.ID)
}

func TestAside_NilClientDegradesToFetch(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var dest cachedUser
	require.NoError(t, Aside(ctx, "user:10", &dest, time.Minute, func() error {
		dest.ID = 10
		return nil
	}))
	assert.Equal(t, uint(10), dest.ID)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(UserKey(3), `{"id":3}`))
	InvalidateUser(ctx, 3)
	assert.False(t, mr.Exists(UserKey(3)))
}

func TestInvalidatePatterns(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(PostKey(5, 1), `{"id":5}`))
	require.NoError(t, mr.Set(PostKey(5, 2), `{"id":5}`))
	require.NoError(t, mr.Set(PostKey(6, 1), `{"id":6}`))

	// One post's entries go for every viewer; other posts stay.
	InvalidatePost(ctx, 5)
	assert.False(t, mr.Exists(PostKey(5, 1)))
	assert.False(t, mr.Exists(PostKey(5, 2)))
	assert.True(t, mr.Exists(PostKey(6, 1)))

	require.NoError(t, mr.Set(FeedKey(1, 20, 0), `[]`))
	require.NoError(t, mr.Set(FeedKey(1, 20, 20), `[]`))
	require.NoError(t, mr.Set(FeedKey(2, 20, 0), `[]`))

	// One user's feed pages go; another user's survive.
	InvalidateUserFeeds(ctx, 1)
	assert.False(t, mr.Exists(FeedKey(1, 20, 0)))
	assert.False(t, mr.Exists(FeedKey(1, 20, 20)))
	assert.True(t, mr.Exists(FeedKey(2, 20, 0)))

	InvalidateFeeds(ctx)
	assert.False(t, mr.Exists(FeedKey(2, 20, 0)))
}
