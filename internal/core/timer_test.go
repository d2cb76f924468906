package core

import (
	"testing"
	"time"
)

func TestFixedStepWaitsFullInterval(t *testing.T) {
	fs := NewFixedStep(5)
	if fs.Interval() != 200*time.Millisecond {
		t.Fatalf("interval = %v, expected 200ms", fs.Interval())
	}
	if fs.Advance(150 * time.Millisecond) {
		t.Fatal("stepped before a full interval")
	}
	if !fs.Advance(60 * time.Millisecond) {
		t.Fatal("expected step once the interval accumulated")
	}
	if fs.Advance(190 * time.Millisecond) {
		t.Fatal("accumulator should restart from zero after a step")
	}
}

func TestFixedStepNoBurstAfterStall(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.Advance(time.Second) {
		t.Fatal("expected a step after a long frame")
	}
	if fs.Advance(time.Millisecond) {
		t.Fatal("a long frame must not queue catch-up steps")
	}
}

func TestFixedStepRateClamp(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Rate() != MinRate {
		t.Fatalf("rate = %d, expected %d", fs.Rate(), MinRate)
	}
	fs.SetRate(99)
	if fs.Rate() != MaxRate || fs.Interval() != 100*time.Millisecond {
		t.Fatalf("rate = %d interval = %v, expected clamp to %d", fs.Rate(), fs.Interval(), MaxRate)
	}
}

func TestFixedStepReset(t *testing.T) {
	fs := NewFixedStep(1)
	fs.Advance(900 * time.Millisecond)
	fs.Reset()
	if fs.Advance(500 * time.Millisecond) {
		t.Fatal("reset should discard accumulated time")
	}
}

func TestRateForDigit(t *testing.T) {
	for d := 1; d <= 9; d++ {
		if r, ok := RateForDigit(d); !ok || r != d {
			t.Fatalf("digit %d -> %d,%v", d, r, ok)
		}
	}
	if r, ok := RateForDigit(0); !ok || r != 10 {
		t.Fatalf("digit 0 -> %d,%v, expected 10", r, ok)
	}
	if _, ok := RateForDigit(10); ok {
		t.Fatal("10 is not a digit")
	}
}
