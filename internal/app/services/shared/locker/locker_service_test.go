package locker

import (
	"context"
	"errors"
	"posyandu-console/internal/app/services/shared/redis/redistest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "lock:weekly-schedule:7:2025-09-01"

	t.Run("Second Holder Is Refused Until Release", func(t *testing.T) {
		service := newLockService(redistest.NewMemoryRepository(), zap.NewNop())

		acquired, token, err := service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		assert.NotEmpty(t, token)

		acquired, _, err = service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired, "lock should be exclusive")

		require.NoError(t, service.Unlock(ctx, key, token))

		acquired, _, err = service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired, "lock should be free after unlock")
	})

	t.Run("Foreign Token Cannot Unlock", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		service := newLockService(repo, zap.NewNop())

		_, _, err := service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)

		assert.Error(t, service.Unlock(ctx, key, "someone-else"))
		assert.True(t, repo.Has(key), "lock must survive a foreign unlock")
	})

	t.Run("Expired Lock Is Reacquirable", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
		repo.SetClock(func() time.Time { return now })
		service := newLockService(repo, zap.NewNop())

		_, token, err := service.TryLock(ctx, key, time.Second)
		require.NoError(t, err)

		now = now.Add(2 * time.Second)
		acquired, _, err := service.TryLock(ctx, key, time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)

		assert.Error(t, service.Unlock(ctx, key, token), "stale token should not release the new holder")
	})

	t.Run("Redis Failure Propagates", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		repo.Err = errors.New("connection refused")
		service := newLockService(repo, zap.NewNop())

		acquired, _, err := service.TryLock(ctx, key, time.Minute)
		assert.Error(t, err)
		assert.False(t, acquired)
	})
}
