package ratelimiter

import (
	"context"
	"fmt"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultWindow = time.Minute

// ResourceLimiter is a fixed-window counter kept in Redis, so every console
// instance shares the same budget for a resource.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log, now: time.Now}
}

type ApplyInput struct {
	// Group namespaces the key, for example "login".
	Group string
	// Resource is the limited subject, for example an email address.
	Resource string
	Window   time.Duration
	// MaxQuota of zero disables the limiter.
	MaxQuota int
}

type ApplyOutput struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Apply counts one attempt for in.Resource and reports whether it fits the window.
// When Redis is unavailable the attempt is allowed and the error is returned for logging.
func (l *ResourceLimiter) Apply(ctx context.Context, in ApplyInput) (ApplyOutput, error) {
	if in.MaxQuota <= 0 {
		return ApplyOutput{Allowed: true}, nil
	}
	window := in.Window
	if window <= 0 {
		window = defaultWindow
	}
	resource := strings.ToLower(strings.TrimSpace(in.Resource))
	if resource == "" {
		return ApplyOutput{Allowed: true}, nil
	}

	now := l.now()
	windowID := now.UnixNano() / int64(window)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", strings.ToLower(in.Group), resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		l.log.Error("ResourceLimiter.Apply error calling redis.IncrementWithTTL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return ApplyOutput{Allowed: true}, err
	}

	if count > in.MaxQuota {
		next := time.Unix(0, (windowID+1)*int64(window))
		return ApplyOutput{Allowed: false, RetryAfter: next.Sub(now)}, nil
	}
	return ApplyOutput{Allowed: true}, nil
}
