package anim

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
)

// ErrInvalidDuration is returned when a run is configured with a zero or negative duration.
var ErrInvalidDuration = errors.New("invalid duration")

// Run interpolates a value from a start to a target over a fixed duration.
// A Run is not safe for concurrent use; the owner serialises access.
type Run struct {
	from     float64
	to       float64
	duration time.Duration
	curve    fyne.AnimationCurve

	elapsed  time.Duration
	value    float64
	running  bool
	finished bool
}

// NewRun creates a stopped run positioned at its start value
func NewRun(from, to float64, duration time.Duration, curve fyne.AnimationCurve) (*Run, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("run %v -> %v: %w: %s", from, to, ErrInvalidDuration, duration)
	}
	if curve == nil {
		curve = fyne.AnimationLinear
	}
	return &Run{
		from:     from,
		to:       to,
		duration: duration,
		curve:    curve,
		value:    from,
	}, nil
}

// Start rewinds the run to its start value and begins advancing it.
func (r *Run) Start() {
	r.elapsed = 0
	r.finished = false
	r.value = r.from
	r.running = true
}

// Advance moves the run forward by dt and reports whether this call
// reached the target. It returns true at most once per Start.
func (r *Run) Advance(dt time.Duration) bool {
	if !r.running || r.finished {
		return false
	}
	if dt > 0 {
		r.elapsed += dt
	}

	if r.elapsed >= r.duration {
		r.elapsed = r.duration
		r.value = r.to
		r.finished = true
		return true
	}

	p := float32(float64(r.elapsed) / float64(r.duration))
	r.value = r.from + (r.to-r.from)*float64(r.curve(p))
	return false
}

// Settle stops the clock and zeroes the elapsed/completion bookkeeping,
// leaving the value where it is.
func (r *Run) Settle() {
	r.running = false
	r.finished = false
	r.elapsed = 0
}

// Reset stops the run and moves it back to its start value.
func (r *Run) Reset() {
	r.Settle()
	r.value = r.from
}

// Value returns the current interpolated value
func (r *Run) Value() float64 {
	return r.value
}

// From returns the start value
func (r *Run) From() float64 {
	return r.from
}

// To returns the target value
func (r *Run) To() float64 {
	return r.to
}

// Duration returns the configured duration
func (r *Run) Duration() time.Duration {
	return r.duration
}

// Elapsed returns the time accumulated since Start
func (r *Run) Elapsed() time.Duration {
	return r.elapsed
}

// Running reports whether the run is being advanced
func (r *Run) Running() bool {
	return r.running
}

// Finished reports whether the run reached its target and has not been settled yet
func (r *Run) Finished() bool {
	return r.finished
}
