package jwtmanager

import (
	"context"
	"posyandu-console/internal/app/models"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJWTManager(t *testing.T) {
	ctx := context.Background()
	manager, err := NewJWTManager("test-secret", time.Hour, zap.NewNop())
	require.NoError(t, err)

	session := &models.Session{SessionID: "sess-1", UserID: "7", Role: models.RoleAdmin}

	t.Run("Round Trip", func(t *testing.T) {
		token, err := manager.Sign(ctx, session)
		require.NoError(t, err)

		claims, err := manager.Parse(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, &models.SessionClaims{SessionID: "sess-1", UserID: "7", Role: models.RoleAdmin}, claims)
	})

	t.Run("Other Secret Is Rejected", func(t *testing.T) {
		other, err := NewJWTManager("another-secret", time.Hour, zap.NewNop())
		require.NoError(t, err)
		token, err := other.Sign(ctx, session)
		require.NoError(t, err)

		_, err = manager.Parse(ctx, token)
		assert.Error(t, err)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		expired := &models.Session{SessionID: "sess-2", UserID: "7", ExpiresAt: time.Now().Add(-time.Minute)}
		signer := manager.(*JWTManager)
		signer.now = func() time.Time { return time.Now().Add(-time.Hour) }
		defer func() { signer.now = time.Now }()

		token, err := manager.Sign(ctx, expired)
		require.NoError(t, err)

		_, err = manager.Parse(ctx, token)
		assert.Error(t, err)
	})

	t.Run("Unsigned Token Is Rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "sess-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = manager.Parse(ctx, token)
		assert.Error(t, err)
	})

	t.Run("Empty Secret", func(t *testing.T) {
		_, err := NewJWTManager("  ", time.Hour, zap.NewNop())
		assert.Error(t, err)
	})
}
