package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Error("first request denied")
	}
	if !rl.Allow("10.0.0.1") {
		t.Error("second request denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third request allowed beyond capacity")
	}

	// A different client gets its own bucket.
	if !rl.Allow("10.0.0.2") {
		t.Error("separate client denied")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	defer rl.Stop()

	if !rl.Allow("client") {
		t.Fatal("first request denied")
	}
	if rl.Allow("client") {
		t.Fatal("second request allowed before refill")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("client") {
		t.Error("request denied after refill window")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	defer rl.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := rl.Middleware(next)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.RemoteAddr = "192.0.2.1:54321"

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, expected 429", w.Code)
	}
}
