package session

import (
	"context"
	"fmt"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sessionStoreInstance contracts.SessionStore
	onceSessionStore     sync.Once
)

type sessionStore struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewSessionStore(repo contracts.RedisRepository, logger *zap.Logger) contracts.SessionStore {
	onceSessionStore.Do(func() {
		sessionStoreInstance = &sessionStore{redisRepo: repo, Log: logger}
	})
	return sessionStoreInstance
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
}

func (s *sessionStore) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	if err := s.redisRepo.Set(ctx, sessionKey(session.SessionID), session, ttl); err != nil {
		s.Log.Error("sessionStore.Save error calling redisRepo.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Find returns ErrSessionMissing when the session expired or never existed.
func (s *sessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	raw, err := s.redisRepo.Get(ctx, sessionKey(sessionID))
	if err != nil {
		s.Log.Error("sessionStore.Find error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrSessionMissing(nil, "")
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		s.Log.Error("sessionStore.Find cannot decode stored session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionStore.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return s.redisRepo.Delete(ctx, sessionKey(sessionID))
}
