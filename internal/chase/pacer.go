package chase

import "time"

// maxFrameDelta caps how much wall-clock time one poll may contribute.
// Without the cap, a stall (debugger, laptop suspend, a long GC on a loaded
// host) would queue an unbounded burst of catch-up ticks.
const maxFrameDelta = 250 * time.Millisecond

// Pacer converts irregular wall-clock progress into a whole number of fixed
// simulation steps. The driver measures elapsed time however it likes and
// asks the pacer how many ticks to run; zero is a valid answer, meaning
// redraw the old state and wait.
type Pacer struct {
	step time.Duration
	acc  time.Duration
}

// NewPacer creates a pacer producing tickRate steps per virtual second.
// Non-positive rates fall back to 60.
func NewPacer(tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Pacer{step: time.Second / time.Duration(tickRate)}
}

// Step returns the fixed duration of one simulation step.
func (p *Pacer) Step() time.Duration { return p.step }

// Advance adds elapsed wall-clock time and returns how many whole simulation
// steps now fit in the accumulator. Negative elapsed counts as zero; elapsed
// beyond the clamp contributes only the clamp.
func (p *Pacer) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameDelta {
		elapsed = maxFrameDelta
	}
	p.acc += elapsed

	n := 0
	for p.acc >= p.step {
		p.acc -= p.step
		n++
	}
	return n
}
