package ui

import (
	"testing"
	"time"
)

func TestFrameClock_Deltas(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base

	var got []time.Duration
	fc := NewFrameClock(func(dt time.Duration) { got = append(got, dt) })
	fc.now = func() time.Time { return now }
	fc.last = base

	now = base.Add(16 * time.Millisecond)
	fc.onFrame(0.1)
	now = now.Add(17 * time.Millisecond)
	fc.onFrame(0.2)

	// no time passed: no tick
	fc.onFrame(0.2)

	// stalled window
	now = now.Add(5 * time.Second)
	fc.onFrame(0.3)

	expected := []time.Duration{16 * time.Millisecond, 17 * time.Millisecond, MaxFrameDelta}
	if len(got) != len(expected) {
		t.Fatalf("ticks = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("tick %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestFrameClock_StoppedByDefault(t *testing.T) {
	fc := NewFrameClock(func(time.Duration) {})
	if fc.Running() {
		t.Error("Running() = true, expected false")
	}
	// Stop on a stopped clock is a no-op
	fc.Stop()
}
