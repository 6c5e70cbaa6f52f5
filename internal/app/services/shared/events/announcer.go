package events

import (
	"context"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Announcer runs after every successful mutation: it drops the cached copies of the
// entity on this instance and publishes entity.changed for the others.
// Failures are logged only; the remote write has already happened.
type Announcer struct {
	Cache     contracts.EntityCache
	Publisher contracts.EventPublisher
	Log       *zap.Logger
}

func NewAnnouncer(cache contracts.EntityCache, publisher contracts.EventPublisher, logger *zap.Logger) *Announcer {
	return &Announcer{Cache: cache, Publisher: publisher, Log: logger}
}

func (a *Announcer) EntityChanged(ctx context.Context, resource, entityID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityKey, resource),
		zap.String(constvars.LoggingEntityIDKey, entityID),
	}

	if err := a.Cache.Invalidate(ctx, resource, entityID); err != nil {
		a.Log.Error("Announcer.EntityChanged error invalidating cache", append(fields, zap.Error(err))...)
	}

	userID := ""
	if session := models.SessionFromContext(ctx); session != nil {
		userID = session.UserID
	}
	if err := a.Publisher.Publish(ctx, EntityChanged(resource, entityID, userID)); err != nil {
		a.Log.Error("Announcer.EntityChanged error publishing event", append(fields, zap.Error(err))...)
	}
}
