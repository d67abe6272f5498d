package anim

// RisingEdge reports the false -> true transitions of a level signal.
// Feeding the same true level repeatedly fires only once.
type RisingEdge struct {
	prev bool
}

// Update records the new level and reports whether it is a rising edge
func (e *RisingEdge) Update(level bool) bool {
	fired := level && !e.prev
	e.prev = level
	return fired
}

// Level returns the last recorded level
func (e *RisingEdge) Level() bool {
	return e.prev
}

// Reset clears the recorded level so the next true fires again
func (e *RisingEdge) Reset() {
	e.prev = false
}
