package app

import "time"

const (
	minTPS = 1
	maxTPS = 120
)

// FixedStep paces autorun evolution at a steady generations-per-second rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a pacer targeting the given rate.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	f.accumulator = f.step
	return f
}

// TPS returns the current target rate.
func (f *FixedStep) TPS() int { return f.tps }

// SetTPS changes the target rate, clamped to [minTPS, maxTPS]. It is safe to
// call from the event loop while running.
func (f *FixedStep) SetTPS(tps int) {
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether enough time has passed to advance a generation.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
