package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a long stall.
const maxCatchUp = 4

// FixedStep paces logical ticks at a steady ticks-per-second rate,
// independent of how often the presentation loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first poll reports one tick immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
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

// Interval returns the duration of one logical tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports how many ticks have elapsed by now since the previous poll.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
	}
	return n
}
