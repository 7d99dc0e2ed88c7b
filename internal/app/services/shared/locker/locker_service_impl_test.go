package locker

import (
	"context"
	sharedredis "medflow-service/internal/app/services/shared/redis"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// single test function, the constructor is a process-wide singleton
func TestLockService(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := sharedredis.NewRedisRepository(rdb)
	service := NewLockService(repo, zap.NewNop())

	ctx := context.Background()

	t.Run("acquires then blocks a second caller", func(t *testing.T) {
		acquired, token, err := service.TryLock(ctx, "ward_lock:General", 5*time.Second)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, token)

		again, _, err := service.TryLock(ctx, "ward_lock:General", 5*time.Second)
		require.NoError(t, err)
		assert.False(t, again)

		require.NoError(t, service.Unlock(ctx, "ward_lock:General", token))

		acquired, _, err = service.TryLock(ctx, "ward_lock:General", 5*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("unlock with a stale token leaves the lock in place", func(t *testing.T) {
		acquired, token, err := service.TryLock(ctx, "ward_lock:ICU", 5*time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		require.NoError(t, service.Unlock(ctx, "ward_lock:ICU", "not-the-token"))

		again, _, err := service.TryLock(ctx, "ward_lock:ICU", 5*time.Second)
		require.NoError(t, err)
		assert.False(t, again, "lock must survive an unlock with the wrong token")

		require.NoError(t, service.Unlock(ctx, "ward_lock:ICU", token))
	})

	t.Run("lock expires on its own", func(t *testing.T) {
		acquired, _, err := service.TryLock(ctx, "ward_lock:Recovery", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		mr.FastForward(2 * time.Second)

		again, _, err := service.TryLock(ctx, "ward_lock:Recovery", time.Second)
		require.NoError(t, err)
		assert.True(t, again)
	})
}
