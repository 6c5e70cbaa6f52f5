package search

import (
	"context"
	"errors"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionContext(id string) context.Context {
	return models.WithSession(context.Background(), &models.Session{SessionID: id})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestCoordinatorRun(t *testing.T) {
	t.Run("Runs After Delay", func(t *testing.T) {
		coordinator := NewCoordinator(5 * time.Millisecond)
		called := false
		err := coordinator.Run(sessionContext("s1"), constvars.ResourcePatient, func(ctx context.Context) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("Newer Search Supersedes Pending One", func(t *testing.T) {
		coordinator := NewCoordinator(50 * time.Millisecond)
		ctx := sessionContext("s1")

		var wg sync.WaitGroup
		var firstErr error
		firstCalled := false
		wg.Add(1)
		go func() {
			defer wg.Done()
			firstErr = coordinator.Run(ctx, constvars.ResourcePatient, func(ctx context.Context) error {
				firstCalled = true
				return nil
			})
		}()

		time.Sleep(10 * time.Millisecond)
		err := coordinator.Run(ctx, constvars.ResourcePatient, func(ctx context.Context) error { return nil })
		wg.Wait()

		require.NoError(t, err)
		assert.False(t, firstCalled)
		assert.Equal(t, constvars.StatusConflict, statusOf(t, firstErr))
	})

	t.Run("Late Response Is Discarded", func(t *testing.T) {
		coordinator := NewCoordinator(time.Millisecond)
		ctx := sessionContext("s1")
		started := make(chan struct{})
		release := make(chan struct{})

		var wg sync.WaitGroup
		var slowErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			slowErr = coordinator.Run(ctx, constvars.ResourceKader, func(ctx context.Context) error {
				close(started)
				<-release
				return nil
			})
		}()

		<-started
		require.NoError(t, coordinator.Run(ctx, constvars.ResourceKader, func(ctx context.Context) error { return nil }))
		close(release)
		wg.Wait()

		require.Error(t, slowErr)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(slowErr, &customErr))
		assert.Equal(t, constvars.ErrDevStaleResponse, customErr.DevMessage)
	})

	t.Run("Sessions Do Not Interfere", func(t *testing.T) {
		coordinator := NewCoordinator(20 * time.Millisecond)
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, id := range []string{"s1", "s2"} {
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				errs[i] = coordinator.Run(sessionContext(id), constvars.ResourcePatient, func(ctx context.Context) error { return nil })
			}(i, id)
		}
		wg.Wait()
		assert.NoError(t, errs[0])
		assert.NoError(t, errs[1])
	})

	t.Run("Search Error Is Returned", func(t *testing.T) {
		coordinator := NewCoordinator(time.Millisecond)
		boom := errors.New("boom")
		err := coordinator.Run(sessionContext("s1"), constvars.ResourcePatient, func(ctx context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		coordinator := NewCoordinator(time.Second)
		ctx, cancel := context.WithCancel(sessionContext("s1"))
		cancel()
		err := coordinator.Run(ctx, constvars.ResourcePatient, func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
