package core

import "time"

// maxCatchUp bounds how many ticks a single Advance call may report, so a
// long stall (debugger, suspended terminal) does not trigger a burst of
// catch-up work.
const maxCatchUp = 8

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// using an accumulator that drains real elapsed time in fixed increments.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the fixed tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance samples the clock and returns how many ticks are due.
func (f *FixedStep) Advance() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.AdvanceBy(delta)
}

// AdvanceBy adds delta to the accumulator and drains it in whole ticks.
func (f *FixedStep) AdvanceBy(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
		if ticks == maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return ticks
}
