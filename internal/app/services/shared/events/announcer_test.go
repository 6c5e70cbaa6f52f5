package events_test

import (
	"context"
	"errors"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/cache"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/events/eventstest"
	"posyandu-console/internal/app/services/shared/redis/redistest"
	"posyandu-console/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnnouncerEntityChanged(t *testing.T) {
	ctx := models.WithSession(context.Background(), &models.Session{SessionID: "s1", UserID: "7"})

	t.Run("Invalidates And Publishes", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		entityCache := cache.NewEntityCache(repo, time.Minute, nil, zap.NewNop())
		require.NoError(t, entityCache.SetList(ctx, constvars.ResourcePatient, []string{"a"}))
		require.NoError(t, entityCache.SetEntity(ctx, constvars.ResourcePatient, "12", "a"))
		recorder := &eventstest.Recorder{}

		events.NewAnnouncer(entityCache, recorder, zap.NewNop()).EntityChanged(ctx, constvars.ResourcePatient, "12")

		assert.False(t, repo.Has(cache.ListKey(constvars.ResourcePatient)))
		assert.False(t, repo.Has(cache.EntityKey(constvars.ResourcePatient, "12")))
		published := recorder.Events()
		require.Len(t, published, 1)
		assert.Equal(t, constvars.EventTypeEntityChanged, published[0].Type)
		assert.Equal(t, "12", published[0].EntityID)
		assert.Equal(t, "7", published[0].UserID)
	})

	t.Run("Failures Are Swallowed", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		repo.Err = errors.New("redis down")
		recorder := &eventstest.Recorder{Err: errors.New("broker down")}
		announcer := events.NewAnnouncer(cache.NewEntityCache(repo, time.Minute, nil, zap.NewNop()), recorder, zap.NewNop())

		assert.NotPanics(t, func() {
			announcer.EntityChanged(context.Background(), constvars.ResourceKader, "3")
		})
	})
}
