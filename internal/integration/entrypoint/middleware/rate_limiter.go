package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/signance/backend/internal/domain/error"
	"github.com/signance/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	redisKeyPrefix = "ratelimit:"
)

// AttemptStore counts attempts per key within a rolling window.
type AttemptStore interface {
	// Increment bumps the attempt count for key and returns the new count.
	// The first increment of a window starts the window's expiry clock.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter limits request rates per client IP. It is used on the login
// and registration endpoints to slow down credential stuffing.
type RateLimiter struct {
	store          AttemptStore
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a rate limiter with default settings backed by the
// given store.
func NewRateLimiter(store AttemptStore) *RateLimiter {
	return NewRateLimiterWithConfig(store, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings.
func NewRateLimiterWithConfig(store AttemptStore, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		store:          store,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Store failures let the request through: availability beats throttling.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		count, err := rl.store.Increment(c.Request.Context(), clientIP, rl.windowDuration)
		if err == nil && count > int64(rl.maxAttempts) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// redisAttemptStore counts attempts in Redis so limits hold across instances.
type redisAttemptStore struct {
	client *redis.Client
}

// NewRedisAttemptStore creates an attempt store backed by the given Redis client.
func NewRedisAttemptStore(client *redis.Client) AttemptStore {
	return &redisAttemptStore{client: client}
}

// Increment bumps the counter for key, setting the window expiry on the
// first attempt.
func (s *redisAttemptStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// memoryEntry tracks attempt data for a single key.
type memoryEntry struct {
	attempts  int64
	resetTime time.Time
}

// memoryAttemptStore counts attempts in process memory. It is the fallback
// when no Redis address is configured.
type memoryAttemptStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

// NewMemoryAttemptStore creates an in-memory attempt store.
func NewMemoryAttemptStore() AttemptStore {
	return &memoryAttemptStore{
		entries: make(map[string]*memoryEntry),
	}
}

// Increment bumps the counter for key. Expired entries are dropped first,
// this key's included, so the map does not grow without bound as client IPs
// come and go.
func (s *memoryAttemptStore) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	for k, e := range s.entries {
		if now.After(e.resetTime) {
			delete(s.entries, k)
		}
	}

	entry, exists := s.entries[key]
	if !exists {
		s.entries[key] = &memoryEntry{
			attempts:  1,
			resetTime: now.Add(window),
		}
		return 1, nil
	}

	entry.attempts++
	return entry.attempts, nil
}
