package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newRateLimitedHandler(t *testing.T, limit int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	handler := RateLimitMiddleware(client, RateLimitConfig{
		RequestsPerWindow: limit,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit:test",
	}, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return handler, mr
}

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddlewareBlocksBeyondLimit(t *testing.T) {
	handler, _ := newRateLimitedHandler(t, 3)

	for i := 0; i < 3; i++ {
		if rec := doRequest(handler, "1.2.3.4:5678"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, rec.Code)
		}
	}

	rec := doRequest(handler, "1.2.3.4:5678")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("X-RateLimit-Remaining %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitMiddlewareIsolatesClients(t *testing.T) {
	handler, _ := newRateLimitedHandler(t, 1)

	if rec := doRequest(handler, "1.1.1.1:1111"); rec.Code != http.StatusOK {
		t.Fatalf("first client blocked: %d", rec.Code)
	}
	if rec := doRequest(handler, "1.1.1.1:1111"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("first client not limited: %d", rec.Code)
	}
	if rec := doRequest(handler, "2.2.2.2:2222"); rec.Code != http.StatusOK {
		t.Fatalf("second client blocked by first client's limit: %d", rec.Code)
	}
}

func TestRateLimitMiddlewareResetsAfterWindow(t *testing.T) {
	handler, mr := newRateLimitedHandler(t, 1)

	if rec := doRequest(handler, "1.2.3.4:5678"); rec.Code != http.StatusOK {
		t.Fatalf("first request blocked: %d", rec.Code)
	}
	if rec := doRequest(handler, "1.2.3.4:5678"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request not limited: %d", rec.Code)
	}

	mr.FastForward(2 * time.Minute)

	if rec := doRequest(handler, "1.2.3.4:5678"); rec.Code != http.StatusOK {
		t.Fatalf("request after window expiry blocked: %d", rec.Code)
	}
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	handler := RateLimitMiddleware(client, RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit:test",
	}, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	mr.Close()

	if rec := doRequest(handler, "1.2.3.4:5678"); rec.Code != http.StatusOK {
		t.Fatalf("request blocked while redis is down: %d", rec.Code)
	}
}
