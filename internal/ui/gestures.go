package ui

import (
	"sync"

	"github.com/ytget/download-check/internal/anim"
)

// PressTracker turns raw pointer down/up events into press-began edges.
// Repeated down events without an up in between (a held finger, a second
// touch point, a mouse and touch pair for the same tap) report only once.
type PressTracker struct {
	mu   sync.Mutex
	edge anim.RisingEdge

	onPress func()
}

// NewPressTracker creates a tracker that calls onPress on every press-began edge
func NewPressTracker(onPress func()) *PressTracker {
	return &PressTracker{onPress: onPress}
}

// Down records the pointer going down and reports whether a press began
func (pt *PressTracker) Down() bool {
	pt.mu.Lock()
	began := pt.edge.Update(true)
	pt.mu.Unlock()

	if began && pt.onPress != nil {
		pt.onPress()
	}
	return began
}

// Up records the pointer being released
func (pt *PressTracker) Up() {
	pt.mu.Lock()
	pt.edge.Update(false)
	pt.mu.Unlock()
}

// Cancel forgets the current press, e.g. when the system steals the touch
func (pt *PressTracker) Cancel() {
	pt.mu.Lock()
	pt.edge.Reset()
	pt.mu.Unlock()
}

// Pressed returns true between a press-began edge and the release
func (pt *PressTracker) Pressed() bool {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.edge.Level()
}
