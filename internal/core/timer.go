package core

import "time"

const (
	// MinRate and MaxRate bound the host tick rate in steps per second.
	MinRate = 1
	MaxRate = 10
	// DefaultRate matches one step every 200ms.
	DefaultRate = 5
)

// FixedStep paces simulation steps at a steady steps-per-second rate,
// independently of how often the host polls it.
type FixedStep struct {
	rate        int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the tick rate, clamped to [MinRate, MaxRate]. It is safe to
// call from the main loop.
func (f *FixedStep) SetRate(rate int) {
	if rate < MinRate {
		rate = MinRate
	}
	if rate > MaxRate {
		rate = MaxRate
	}
	f.rate = rate
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the current steps-per-second rate.
func (f *FixedStep) Rate() int { return f.rate }

// Interval returns the duration between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops any accumulated time so the next step is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Pause forgets the poll timestamp so time spent paused is not accumulated.
func (f *FixedStep) Pause() { f.last = time.Time{} }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Advance adds delta to the accumulator and reports whether a full interval
// has elapsed. The whole accumulator is spent on a step so a slow frame never
// triggers a burst of catch-up steps.
func (f *FixedStep) Advance(delta time.Duration) bool {
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// RateForDigit maps the digit keys 1-9 to that many steps per second and 0 to
// ten. ok is false for anything else.
func RateForDigit(d int) (rate int, ok bool) {
	switch {
	case d == 0:
		return MaxRate, true
	case d >= 1 && d <= 9:
		return d, true
	}
	return 0, false
}
