package goblog

import (
	"fmt"
	"testing"
	"time"
)

func TestRateLimiterExhaustsBurst(t *testing.T) {
	const burst = 5
	limiter := NewRateLimiter(burst, time.Minute)

	for i := 0; i < burst; i++ {
		if !limiter.Allow("198.51.100.7") {
			t.Fatalf("request %d of %d should fit in the burst", i+1, burst)
		}
	}
	for i := 0; i < 3; i++ {
		if limiter.Allow("198.51.100.7") {
			t.Fatal("requests past the burst must be rejected")
		}
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	limiter := NewRateLimiter(1, 100*time.Millisecond)

	if !limiter.Allow("198.51.100.8") {
		t.Fatal("fresh client should be allowed")
	}
	if limiter.Allow("198.51.100.8") {
		t.Fatal("client at its limit should be rejected")
	}

	time.Sleep(150 * time.Millisecond)

	if !limiter.Allow("198.51.100.8") {
		t.Fatal("limit should clear once the window has passed")
	}
}

func TestRateLimiterTracksClientsIndependently(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	for i := 0; i < 4; i++ {
		ip := fmt.Sprintf("198.51.100.%d", 10+i)
		if !limiter.Allow(ip) {
			t.Fatalf("client %s should get its own quota", ip)
		}
	}
	if limiter.Allow("198.51.100.10") {
		t.Fatal("an exhausted client must not benefit from other clients' quotas")
	}
}
