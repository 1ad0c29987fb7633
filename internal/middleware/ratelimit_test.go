package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doFrom(h http.Handler, addr string) int {
	req := httptest.NewRequest(http.MethodPost, "/adopcion", nil)
	req.RemoteAddr = addr
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr.Code
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	h := RateLimit(0.001, 2)(okHandler())

	for i := 0; i < 2; i++ {
		if code := doFrom(h, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := doFrom(h, "10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}

	// otra IP tiene su propio bucket
	if code := doFrom(h, "10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("expected 200 for a different ip, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(0, 0)(okHandler())
	for i := 0; i < 50; i++ {
		if code := doFrom(h, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("expected 200 with limiter disabled, got %d", code)
		}
	}
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")

	now = now.Add(visitorTTL + time.Minute)
	rl.getLimiter("10.0.0.3")

	if len(rl.visitors) != 1 {
		t.Fatalf("expected stale visitors to be swept, have %d", len(rl.visitors))
	}
	if _, ok := rl.visitors["10.0.0.3"]; !ok {
		t.Fatalf("expected the fresh visitor to remain")
	}
}
