package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
	"time"
)

type SessionStore interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type SessionTokenManager interface {
	Sign(ctx context.Context, session *models.Session) (string, error)
	Parse(ctx context.Context, token string) (*models.SessionClaims, error)
}
