package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const issuer = "posyandu-console"

// sessionClaims is the cookie payload: the session id plus the role already resolved at login.
type sessionClaims struct {
	Role int `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs the console session cookie with HS256.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration, log *zap.Logger) (contracts.SessionTokenManager, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	return &JWTManager{log: log, secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Sign issues a token that expires with the session, or after the configured ttl when the session has no expiry.
func (j *JWTManager) Sign(ctx context.Context, session *models.Session) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.Sign called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	now := j.now()
	expiresAt := session.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(j.ttl)
	}
	claims := sessionClaims{
		Role: int(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.SessionID,
			Subject:   session.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

func (j *JWTManager) Parse(ctx context.Context, token string) (*models.SessionClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token is required")
	}

	claims := new(sessionClaims)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, fmt.Errorf("session token is not valid")
	}
	if !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}

	return &models.SessionClaims{
		SessionID: claims.ID,
		UserID:    claims.Subject,
		Role:      models.Role(claims.Role),
	}, nil
}
