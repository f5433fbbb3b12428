package core

import (
	"testing"
	"time"
)

func TestFixedStepDrainsWholeTicks(t *testing.T) {
	fs := NewFixedStep(10)
	fs.accumulator = 0

	if got := fs.AdvanceBy(50 * time.Millisecond); got != 0 {
		t.Fatalf("expected no tick after half a step, got %d", got)
	}
	if got := fs.AdvanceBy(60 * time.Millisecond); got != 1 {
		t.Fatalf("expected one tick once a full step accumulated, got %d", got)
	}
	if got := fs.AdvanceBy(290 * time.Millisecond); got != 3 {
		t.Fatalf("expected three ticks, got %d", got)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	fs := NewFixedStep(60)
	if got := fs.AdvanceBy(10 * time.Second); got != maxCatchUp {
		t.Fatalf("expected catch-up capped at %d, got %d", maxCatchUp, got)
	}
	if got := fs.AdvanceBy(0); got != 0 {
		t.Fatalf("expected accumulator to be dropped after cap, got %d", got)
	}
}

func TestFixedStepAdvanceUsesClock(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return now }

	// First sample primes the clock; the initial accumulator holds one step.
	if got := fs.Advance(); got != 1 {
		t.Fatalf("expected the primed step on first advance, got %d", got)
	}
	now = base.Add(500 * time.Millisecond)
	if got := fs.Advance(); got != 2 {
		t.Fatalf("expected two ticks after half a second at 4 TPS, got %d", got)
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got step %v", fs.Step())
	}
}
