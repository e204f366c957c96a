package contact

import (
	"sync"
	"testing"
	"time"
)

func TestSlidingWindowLimiter(t *testing.T) {
	limiter := NewSlidingWindowLimiter(10*time.Minute, 3)
	now := time.Now()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("a", now) {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	if limiter.Allow("a", now) {
		t.Error("attempt over quota should be rejected")
	}

	// Other keys are unaffected
	if !limiter.Allow("b", now) {
		t.Error("different key should be allowed")
	}
}

func TestSlidingWindowLimiterRejectDoesNotConsume(t *testing.T) {
	limiter := NewSlidingWindowLimiter(10*time.Minute, 1)
	now := time.Now()

	limiter.Allow("a", now)
	for i := 0; i < 5; i++ {
		limiter.Allow("a", now)
	}

	// Only the single allowed stamp should expire; once it does, one new
	// attempt passes. Rejections must not have extended the ledger.
	later := now.Add(10*time.Minute + time.Second)
	if !limiter.Allow("a", later) {
		t.Error("attempt after window should be allowed")
	}
	if limiter.Allow("a", later) {
		t.Error("quota is 1, second attempt should be rejected")
	}
}

func TestSlidingWindowLimiterSlides(t *testing.T) {
	limiter := NewSlidingWindowLimiter(time.Minute, 2)
	start := time.Now()

	limiter.Allow("a", start)
	limiter.Allow("a", start.Add(30*time.Second))

	if limiter.Allow("a", start.Add(45*time.Second)) {
		t.Error("both stamps still in window, should be rejected")
	}

	// First stamp has slid out, second is still in
	if !limiter.Allow("a", start.Add(61*time.Second)) {
		t.Error("one stamp expired, should be allowed")
	}
}

func TestSlidingWindowLimiterConcurrentAccess(t *testing.T) {
	limiter := NewSlidingWindowLimiter(time.Minute, 50)
	now := time.Now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow("a", now) {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("allowed = %d, want exactly 50", allowed)
	}
}
