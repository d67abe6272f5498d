package model

// TransitionState represents which animation run of the icon is active
type TransitionState string

const (
	// StateIdle means the download glyph is shown and nothing animates
	StateIdle TransitionState = "Idle"

	// StateDownloading means the progress ring is sweeping
	StateDownloading TransitionState = "Downloading"

	// StateCompleting means the checkmark is being drawn in
	StateCompleting TransitionState = "Completing"

	// StateDone means the checkmark is fully drawn
	StateDone TransitionState = "Done"
)

// String returns the string representation of TransitionState
func (s TransitionState) String() string {
	return string(s)
}

// IsActive returns true if a run is animating in this state
func (s TransitionState) IsActive() bool {
	return s == StateDownloading || s == StateCompleting
}

// IsFinished returns true if the cycle has reached the checkmark
func (s TransitionState) IsFinished() bool {
	return s == StateDone
}

// CanStart returns true if a press may begin a new cycle without re-entering one
func (s TransitionState) CanStart() bool {
	return s == StateIdle || s == StateDone
}
