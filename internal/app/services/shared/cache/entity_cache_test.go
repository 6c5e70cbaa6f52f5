package cache

import (
	"context"
	"errors"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/redis/redistest"
	"posyandu-console/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingObserver struct {
	hits, misses int
}

func (o *countingObserver) ObserveCacheLookup(resource string, hit bool) {
	if hit {
		o.hits++
	} else {
		o.misses++
	}
}

func TestEntityCache(t *testing.T) {
	ctx := context.Background()

	t.Run("List Round Trip And Invalidation", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		observer := &countingObserver{}
		cache := NewEntityCache(repo, time.Minute, observer, zap.NewNop())

		var patients []models.Patient
		found, err := cache.GetList(ctx, constvars.ResourcePatient, &patients)
		require.NoError(t, err)
		assert.False(t, found)

		stored := []models.Patient{{ID: "1", Name: "Siti"}, {ID: "2", Name: "Budi"}}
		require.NoError(t, cache.SetList(ctx, constvars.ResourcePatient, stored))
		require.NoError(t, cache.SetEntity(ctx, constvars.ResourcePatient, "1", stored[0]))

		found, err = cache.GetList(ctx, constvars.ResourcePatient, &patients)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stored, patients)

		require.NoError(t, cache.Invalidate(ctx, constvars.ResourcePatient, "1"))
		assert.False(t, repo.Has("entity:patient:list"))
		assert.False(t, repo.Has("entity:patient:1"))

		assert.Equal(t, 1, observer.hits)
		assert.Equal(t, 1, observer.misses)
	})

	t.Run("Invalidate Without ID Keeps Other Entities", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		cache := NewEntityCache(repo, 0, nil, zap.NewNop())

		require.NoError(t, cache.SetList(ctx, constvars.ResourceKader, []models.Kader{{ID: "3"}}))
		require.NoError(t, cache.SetEntity(ctx, constvars.ResourceKader, "3", models.Kader{ID: "3"}))

		require.NoError(t, cache.Invalidate(ctx, constvars.ResourceKader, ""))
		assert.False(t, repo.Has("entity:kader:list"))
		assert.True(t, repo.Has("entity:kader:3"))
	})

	t.Run("Entity Lookup Ignores Empty ID", func(t *testing.T) {
		cache := NewEntityCache(redistest.NewMemoryRepository(), 0, nil, zap.NewNop())
		var schedule models.VisitSchedule
		found, err := cache.GetEntity(ctx, constvars.ResourceSchedule, "", &schedule)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Redis Errors Surface", func(t *testing.T) {
		repo := redistest.NewMemoryRepository()
		repo.Err = errors.New("redis down")
		cache := NewEntityCache(repo, 0, nil, zap.NewNop())

		var patients []models.Patient
		_, err := cache.GetList(ctx, constvars.ResourcePatient, &patients)
		assert.Error(t, err)
	})
}

func TestInvalidationHandler(t *testing.T) {
	ctx := context.Background()
	repo := redistest.NewMemoryRepository()
	cache := NewEntityCache(repo, 0, nil, zap.NewNop())
	handler := NewInvalidationHandler(cache, zap.NewNop())

	require.NoError(t, cache.SetEntity(ctx, constvars.ResourceSchedule, "9", models.VisitSchedule{ID: "9"}))
	require.NoError(t, cache.SetList(ctx, constvars.ResourceSchedule, []models.VisitSchedule{{ID: "9"}}))

	handler.HandleEvent(ctx, models.ConsoleEvent{Type: constvars.EventTypeSessionLogout, UserID: "7"})
	assert.True(t, repo.Has("entity:schedule:9"), "logout events leave the cache alone")

	handler.HandleEvent(ctx, models.ConsoleEvent{Type: constvars.EventTypeEntityChanged, Entity: constvars.ResourceSchedule, EntityID: "9"})
	assert.False(t, repo.Has("entity:schedule:9"))
	assert.False(t, repo.Has("entity:schedule:list"))
}
