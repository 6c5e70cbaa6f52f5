package cache

import (
	"context"
	"fmt"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Observer is told about every lookup.
type Observer interface {
	ObserveCacheLookup(resource string, hit bool)
}

type entityCache struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	observer  Observer
	Log       *zap.Logger
}

// NewEntityCache keys entries as entity:<type>:<id> with one entity:<type>:list entry per type.
// A zero ttl keeps entries until they are invalidated.
func NewEntityCache(repo contracts.RedisRepository, ttl time.Duration, observer Observer, logger *zap.Logger) contracts.EntityCache {
	return &entityCache{
		redisRepo: repo,
		ttl:       ttl,
		observer:  observer,
		Log:       logger,
	}
}

func EntityKey(resource, id string) string {
	return fmt.Sprintf(constvars.CacheKeyEntityFormat, resource, id)
}

func ListKey(resource string) string {
	return fmt.Sprintf(constvars.CacheKeyListFormat, resource)
}

func (c *entityCache) GetList(ctx context.Context, resource string, out interface{}) (bool, error) {
	return c.lookup(ctx, resource, ListKey(resource), out)
}

func (c *entityCache) SetList(ctx context.Context, resource string, value interface{}) error {
	return c.store(ctx, ListKey(resource), value)
}

func (c *entityCache) GetEntity(ctx context.Context, resource, id string, out interface{}) (bool, error) {
	if id == "" {
		return false, nil
	}
	return c.lookup(ctx, resource, EntityKey(resource, id), out)
}

func (c *entityCache) SetEntity(ctx context.Context, resource, id string, value interface{}) error {
	if id == "" {
		return nil
	}
	return c.store(ctx, EntityKey(resource, id), value)
}

// Invalidate drops the entity entry (when id is set) and the list of its type.
func (c *entityCache) Invalidate(ctx context.Context, resource, id string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	keys := []string{ListKey(resource)}
	if id != "" {
		keys = append(keys, EntityKey(resource, id))
	}

	if err := c.redisRepo.Delete(ctx, keys...); err != nil {
		c.Log.Error("entityCache.Invalidate error calling redisRepo.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingCacheKey, keys),
			zap.Error(err),
		)
		return err
	}

	c.Log.Debug("entityCache.Invalidate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingCacheKey, keys),
	)
	return nil
}

func (c *entityCache) lookup(ctx context.Context, resource, key string, out interface{}) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	raw, err := c.redisRepo.Get(ctx, key)
	if err != nil {
		c.Log.Warn("entityCache.lookup error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return false, err
	}

	hit := raw != ""
	if hit {
		if err := json.Unmarshal([]byte(raw), out); err != nil {
			return false, exceptions.ErrCannotParseJSON(err)
		}
	}
	if c.observer != nil {
		c.observer.ObserveCacheLookup(resource, hit)
	}

	c.Log.Debug("entityCache.lookup",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Bool(constvars.LoggingCacheHitKey, hit),
	)
	return hit, nil
}

func (c *entityCache) store(ctx context.Context, key string, value interface{}) error {
	if err := c.redisRepo.Set(ctx, key, value, c.ttl); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		c.Log.Warn("entityCache.store error calling redisRepo.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

type invalidationHandler struct {
	cache contracts.EntityCache
	Log   *zap.Logger
}

// NewInvalidationHandler drops cached entries named by entity.changed events from any console instance.
func NewInvalidationHandler(cache contracts.EntityCache, logger *zap.Logger) contracts.EventHandler {
	return &invalidationHandler{cache: cache, Log: logger}
}

func (h *invalidationHandler) HandleEvent(ctx context.Context, event models.ConsoleEvent) {
	if event.Type != constvars.EventTypeEntityChanged || event.Entity == "" {
		return
	}
	if err := h.cache.Invalidate(ctx, event.Entity, event.EntityID); err != nil {
		h.Log.Warn("invalidationHandler.HandleEvent cannot invalidate cache",
			zap.String(constvars.LoggingEntityKey, event.Entity),
			zap.String(constvars.LoggingEntityIDKey, event.EntityID),
			zap.Error(err),
		)
	}
}
