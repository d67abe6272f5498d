package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReset    = "↺"
	IconCheck    = "✓"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	// Ring icon size at the smallest window width
	MinIconWidth float32 = 120

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	CaptionSpacing float32 = 12
)

// Window defaults; the width matches the nominal design width
const (
	WindowWidth  float32 = 375
	WindowHeight float32 = 667
)

// Frame clock
const (
	// FrameClockPeriod is the length of one repetition of the clock animation.
	// The clock ticks every rendered frame regardless of its value.
	FrameClockPeriod = time.Second

	// MaxFrameDelta caps a single tick so a stalled window does not jump the sweep
	MaxFrameDelta = 250 * time.Millisecond
)
