package ratelimiter

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

func TestResourceLimiterApply(t *testing.T) {
	repo := redistest.NewMemoryRepository()
	limiter := NewResourceLimiter(repo, zap.NewNop())
	now := time.Date(2025, time.September, 15, 10, 0, 20, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	repo.SetClock(func() time.Time { return now })

	in := ApplyInput{Group: "login", Resource: "Dewi@Posyandu.id", Window: time.Minute, MaxQuota: 2}
	for i := 0; i < 2; i++ {
		out, err := limiter.Apply(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.Apply(context.Background(), ApplyInput{Group: "login", Resource: "dewi@posyandu.id", Window: time.Minute, MaxQuota: 2})
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, 40*time.Second, out.RetryAfter)

	out, err = limiter.Apply(context.Background(), ApplyInput{Group: "login", Resource: "budi@posyandu.id", Window: time.Minute, MaxQuota: 2})
	require.NoError(t, err)
	assert.True(t, out.Allowed)

	now = now.Add(time.Minute)
	out, err = limiter.Apply(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestResourceLimiterFailsOpen(t *testing.T) {
	repo := redistest.NewMemoryRepository()
	repo.Err = errors.New("connection refused")
	limiter := NewResourceLimiter(repo, zap.NewNop())

	out, err := limiter.Apply(context.Background(), ApplyInput{Group: "login", Resource: "dewi@posyandu.id", MaxQuota: 1})
	assert.Error(t, err)
	assert.True(t, out.Allowed)
}

func TestResourceLimiterDisabled(t *testing.T) {
	limiter := NewResourceLimiter(redistest.NewMemoryRepository(), zap.NewNop())

	out, err := limiter.Apply(context.Background(), ApplyInput{Group: "login", Resource: "x"})
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}
