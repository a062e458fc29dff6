package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedRouter(t *testing.T, limiter *RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine) int {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:4321"
	router.ServeHTTP(recorder, req)
	return recorder.Code
}

func TestMemoryRateLimiterBlocksAfterLimit(t *testing.T) {
	limiter := NewRateLimiterWithConfig(NewMemoryAttemptStore(), 3, time.Minute)
	router := newLimitedRouter(t, limiter)

	for i := 0; i < 3; i++ {
		if code := doRequest(router); code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want %d", i+1, code, http.StatusOK)
		}
	}

	if code := doRequest(router); code != http.StatusTooManyRequests {
		t.Fatalf("got status %d after limit, want %d", code, http.StatusTooManyRequests)
	}
}

func TestMemoryRateLimiterResetsAfterWindow(t *testing.T) {
	store := NewMemoryAttemptStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Increment(ctx, "client", 10*time.Millisecond); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	time.Sleep(20 * time.Millisecond)

	count, err := store.Increment(ctx, "client", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("increment after window: %v", err)
	}
	if count != 1 {
		t.Fatalf("got count %d after window expiry, want 1", count)
	}
}

func TestMemoryRateLimiterEvictsExpiredEntries(t *testing.T) {
	store := NewMemoryAttemptStore()
	ctx := context.Background()

	for _, key := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		if _, err := store.Increment(ctx, key, 10*time.Millisecond); err != nil {
			t.Fatalf("increment %s: %v", key, err)
		}
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := store.Increment(ctx, "10.0.0.4", time.Minute); err != nil {
		t.Fatalf("increment after window: %v", err)
	}

	mem := store.(*memoryAttemptStore)
	mem.mu.Lock()
	defer mem.mu.Unlock()
	if len(mem.entries) != 1 {
		t.Fatalf("got %d entries after expiry, want 1", len(mem.entries))
	}
	if _, ok := mem.entries["10.0.0.4"]; !ok {
		t.Fatal("fresh entry missing after eviction pass")
	}
}

func TestRedisRateLimiterBlocksAfterLimit(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiterWithConfig(NewRedisAttemptStore(client), 2, time.Minute)
	router := newLimitedRouter(t, limiter)

	for i := 0; i < 2; i++ {
		if code := doRequest(router); code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want %d", i+1, code, http.StatusOK)
		}
	}

	if code := doRequest(router); code != http.StatusTooManyRequests {
		t.Fatalf("got status %d after limit, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRedisRateLimiterWindowExpiry(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisAttemptStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Increment(ctx, "client", time.Minute); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	server.FastForward(2 * time.Minute)

	count, err := store.Increment(ctx, "client", time.Minute)
	if err != nil {
		t.Fatalf("increment after window: %v", err)
	}
	if count != 1 {
		t.Fatalf("got count %d after window expiry, want 1", count)
	}
}

func TestRateLimiterFailsOpenOnStoreError(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()

	limiter := NewRateLimiterWithConfig(NewRedisAttemptStore(client), 1, time.Minute)
	router := newLimitedRouter(t, limiter)

	if code := doRequest(router); code != http.StatusOK {
		t.Fatalf("got status %d with unreachable store, want %d", code, http.StatusOK)
	}
}
