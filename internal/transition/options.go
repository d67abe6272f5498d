package transition

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/download-check/internal/anim"
)

// ReentryPolicy decides what a press does while a cycle is animating
type ReentryPolicy string

const (
	// ReentryIgnore rejects presses while downloading or completing
	ReentryIgnore ReentryPolicy = "ignore"

	// ReentryRestart cancels the running cycle and starts a new one
	ReentryRestart ReentryPolicy = "restart"
)

// ParseReentryPolicy validates a policy name
func ParseReentryPolicy(s string) (ReentryPolicy, error) {
	switch p := ReentryPolicy(s); p {
	case ReentryIgnore, ReentryRestart:
		return p, nil
	}
	return "", fmt.Errorf("unknown re-entry policy %q (expected %q or %q)", s, ReentryIgnore, ReentryRestart)
}

// Default timings
const (
	DefaultDownloadDuration  = 3000 * time.Millisecond
	DefaultCheckmarkDuration = 1200 * time.Millisecond
)

// Options configures a Controller
type Options struct {
	DownloadDuration  time.Duration
	CheckmarkDuration time.Duration

	DownloadEasing  fyne.AnimationCurve
	CheckmarkEasing fyne.AnimationCurve

	Reentry ReentryPolicy

	// LoopCheckmark restarts the checkmark run forever instead of settling in Done
	LoopCheckmark bool
}

// DefaultOptions returns the classic variant: 3s ease-in-out sweep, 1.2s linear
// checkmark, re-entrant presses ignored, checkmark halts.
func DefaultOptions() Options {
	return Options{
		DownloadDuration:  DefaultDownloadDuration,
		CheckmarkDuration: DefaultCheckmarkDuration,
		DownloadEasing:    fyne.AnimationEaseInOut,
		CheckmarkEasing:   fyne.AnimationLinear,
		Reentry:           ReentryIgnore,
	}
}

// Validate checks the options for programmer errors
func (o Options) Validate() error {
	if o.DownloadDuration <= 0 {
		return fmt.Errorf("download duration %s: %w", o.DownloadDuration, anim.ErrInvalidDuration)
	}
	if o.CheckmarkDuration <= 0 {
		return fmt.Errorf("checkmark duration %s: %w", o.CheckmarkDuration, anim.ErrInvalidDuration)
	}
	if _, err := ParseReentryPolicy(string(o.Reentry)); err != nil {
		return err
	}
	return nil
}
