package core

import "time"

// FixedStep reports when a periodic task is due at a steady rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	clock       Clock
}

// NewFixedStep constructs a FixedStep controller firing tps times per second.
// The first ShouldStep call fires immediately.
func NewFixedStep(tps int, clock Clock) *FixedStep {
	if clock == nil {
		clock = SystemClock{}
	}
	fs := &FixedStep{clock: clock}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the task should run now.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
