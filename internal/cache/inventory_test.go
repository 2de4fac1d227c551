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

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *int) func() error {
		return func() error {
			calls++
			*dest = 7
			return nil
		}
	}

	var v int
	require.NoError(t, Aside(ctx, "post:1", &v, time.Minute, fetch(&v)))
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)

	// Second read is served from cache; fetch is not called again.
	var v2 int
	require.NoError(t, Aside(ctx, "post:1", &v2, time.Minute, fetch(&v2)))
	assert.Equal(t, 7, v2)
	assert.Equal(t, 1, calls)
}

func TestInvalidateFeed(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, FeedFrontKey, []int{1, 2}, time.Minute))
	require.True(t, mr.Exists(FeedFrontKey))

	InvalidateFeed(ctx)
	assert.False(t, mr.Exists(FeedFrontKey))
}

func TestNilClientFailsOpen(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var v int
	found, err := GetJSON(ctx, "k", &v)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "k", 1, time.Minute))

	// Aside degrades to a plain fetch.
	err = Aside(ctx, "k", &v, time.Minute, func() error { v = 9; return nil })
	assert.NoError(t, err)
	assert.Equal(t, 9, v)

	Invalidate(ctx, "k")
}
