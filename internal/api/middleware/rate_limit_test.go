package middleware

import (
	"testing"
	"time"
)

// backdate pretends the last refill happened d earlier, so refill
// behavior is testable without sleeping.
func backdate(rl *RateLimiter, d time.Duration) {
	rl.mu.Lock()
	rl.lastTime = rl.lastTime.Add(-d)
	rl.mu.Unlock()
}

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d denied within the burst capacity", i+1)
		}
	}
	if rl.Allow() {
		t.Error("request beyond capacity allowed")
	}
}

func TestRateLimiterRefillCapped(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)

	rl.Allow()
	rl.Allow()
	backdate(rl, time.Hour)

	for i := 0; i < 2; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d denied after a full refill", i+1)
		}
	}
	if rl.Allow() {
		t.Error("refill exceeded bucket capacity")
	}
}

func TestRateLimiterRefillsUnderConstantTraffic(t *testing.T) {
	// 10 tokens/sec, drained; callers then poll every 50ms. Each poll
	// earns half a token, so the second poll must get through even
	// though no single gap is worth a whole token.
	rl := NewRateLimiter(10, time.Second)
	for i := 0; i < 10; i++ {
		if !rl.Allow() {
			t.Fatalf("request %d denied while draining", i+1)
		}
	}
	if rl.Allow() {
		t.Fatal("drained bucket still allowed a request")
	}

	granted := false
	for i := 0; i < 4; i++ {
		backdate(rl, 50*time.Millisecond)
		if rl.Allow() {
			granted = true
			break
		}
	}
	if !granted {
		t.Error("fractional refill credit never accumulated into a token")
	}
}
