package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// FrameClock calls tick once per rendered frame with the wall-clock time
// since the previous frame. It runs a Fyne animation that repeats forever,
// so ticks arrive on the Fyne main goroutine.
type FrameClock struct {
	animation *fyne.Animation
	tick      func(dt time.Duration)
	now       func() time.Time
	last      time.Time
	running   bool
}

// NewFrameClock creates a stopped clock
func NewFrameClock(tick func(dt time.Duration)) *FrameClock {
	fc := &FrameClock{tick: tick, now: time.Now}
	fc.animation = fyne.NewAnimation(FrameClockPeriod, fc.onFrame)
	fc.animation.Curve = fyne.AnimationLinear
	fc.animation.RepeatCount = fyne.AnimationRepeatForever
	return fc
}

// Start begins ticking; the first tick measures from now
func (fc *FrameClock) Start() {
	if fc.running {
		return
	}
	fc.last = fc.now()
	fc.running = true
	fc.animation.Start()
}

// Stop halts the clock
func (fc *FrameClock) Stop() {
	if !fc.running {
		return
	}
	fc.running = false
	fc.animation.Stop()
}

// Running reports whether the clock has been started
func (fc *FrameClock) Running() bool {
	return fc.running
}

func (fc *FrameClock) onFrame(float32) {
	now := fc.now()
	dt := now.Sub(fc.last)
	fc.last = now

	if dt <= 0 {
		return
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	fc.tick(dt)
}
