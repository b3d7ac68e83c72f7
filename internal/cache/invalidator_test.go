package cache

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pick-settler/internal/config"
)

// testRedisAddrEnv names a scratch Redis used by the integration test
const testRedisAddrEnv = "PICK_SETTLER_TEST_REDIS_ADDR"

func TestNewDisabledReturnsNoop(t *testing.T) {
	inv, err := New(context.Background(), config.CacheConfig{Enabled: false}, nil)
	require.NoError(t, err)
	assert.IsType(t, NoopInvalidator{}, inv)

	n, err := inv.Invalidate(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, inv.Close())
}

func TestNewUnreachableRedis(t *testing.T) {
	_, err := New(context.Background(), config.CacheConfig{Enabled: true, Addr: "127.0.0.1:1"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: ping")
}

func TestRedisInvalidatorDeletesMatchingKeys(t *testing.T) {
	addr := os.Getenv(testRedisAddrEnv)
	if addr == "" {
		t.Skipf("%s not set", testRedisAddrEnv)
	}

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	require.NoError(t, rdb.FlushDB(ctx).Err())

	for i := 0; i < 450; i++ {
		require.NoError(t, rdb.Set(ctx, fmt.Sprintf("picks:%d", i), "x", 0).Err())
	}
	require.NoError(t, rdb.Set(ctx, "dashboard:summary", "x", 0).Err())
	require.NoError(t, rdb.Set(ctx, "session:abc", "x", 0).Err())

	inv := NewRedisInvalidator(rdb, []string{"picks:*", "dashboard:*"}, nil)
	defer inv.Close()

	n, err := inv.Invalidate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(451), n)

	exists, err := rdb.Exists(ctx, "session:abc").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}
