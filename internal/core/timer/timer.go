// Package timer provides a one-shot countdown driven by frame deltas.
package timer

import "time"

// Timer counts elapsed frame time up to a fixed duration.
// Elapsed never exceeds Duration, so the remaining time is never negative.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// New creates a timer that finishes after d of ticked time.
func New(d time.Duration) Timer {
	if d < 0 {
		d = 0
	}
	return Timer{duration: d}
}

// Tick advances the timer by dt. Negative deltas are ignored.
func (t *Timer) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.elapsed += dt
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

// Finished reports whether the full duration has elapsed.
func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

// Reset restarts the countdown.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Remaining returns the time left before the timer finishes.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Elapsed returns the ticked time since the last reset.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}
