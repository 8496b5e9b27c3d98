package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(120)
	if limiter.defaultRate != 2 {
		t.Errorf("expected 2 rps for 120 rpm, got %v", limiter.defaultRate)
	}

	l2 := NewLimiter(-1)
	if l2.defaultRate != 1 {
		t.Errorf("expected fallback 1 rps for negative input, got %v", l2.defaultRate)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(6000) // effectively unthrottled
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different provider should also work
	if err := limiter.Wait(ctx, "ollama"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(6000)
	ctx := context.Background()

	start := time.Now()
	err := limiter.WaitWithDelay(ctx, "openai", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}

	duration := time.Since(start)
	if duration < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", duration)
	}
}

func TestLimiter_BudgetExhaustion(t *testing.T) {
	// 2 rpm with burst 1: one request consumes the whole burst
	limiter := NewLimiter(2)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	if limiter.Allow("openai") {
		t.Error("expected allow to fail (exhausted budget)")
	}

	// Different provider has its own budget
	if !limiter.Allow("ollama") {
		t.Error("expected allow for other provider")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	limiter := NewLimiter(6000) // fast default

	// Set strict limit for one provider
	limiter.SetProviderRate("openai", 1, 1)

	// First request passes (burst 1)
	if !limiter.Allow("openai") {
		t.Error("first request should pass")
	}

	// Second request fails
	if limiter.Allow("openai") {
		t.Error("second request should fail")
	}

	// Other provider still fast
	if !limiter.Allow("ollama") {
		t.Error("other provider should pass")
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(1) // one request per minute
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}

	cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(cancelCtx, "openai"); err == nil {
		t.Error("expected context error while budget exhausted")
	}
}
