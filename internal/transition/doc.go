package transition

// Package transition implements the state machine that sequences the download
// sweep and the checkmark draw-in. It is driven by press-began events and by
// explicit per-frame Tick calls, and exposes model.Frame snapshots to renderers.
