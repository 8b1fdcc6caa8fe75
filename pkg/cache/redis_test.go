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

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, "invoice", time.Hour), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("%PDF-1.3")))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), got)

	assert.True(t, mr.Exists("invoice:abc"))
	assert.Equal(t, time.Hour, mr.TTL("invoice:abc"))
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := setupTestRedis(t)

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Expired(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("data")))
	mr.FastForward(2 * time.Hour)

	_, err := c.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "abc", []byte("data")))
	require.NoError(t, c.Delete(ctx, "abc"))
	assert.False(t, mr.Exists("invoice:abc"))
}
