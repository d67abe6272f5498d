package transition

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/download-check/internal/anim"
	"github.com/ytget/download-check/internal/geometry"
	"github.com/ytget/download-check/internal/model"
)

// ErrReentrantStart is returned by Start when a cycle is animating and the
// re-entry policy is ReentryIgnore.
var ErrReentrantStart = errors.New("start while animating")

// Controller owns the download -> checkmark state machine
type Controller struct {
	mu sync.RWMutex

	opts     Options
	state    model.TransitionState
	cycleID  string
	download *anim.Run
	check    *anim.Run

	// completed fires the checkmark run on the download run's 0 -> 1 edge
	completed anim.RisingEdge

	onUpdate func(model.Frame) // callback for renderers
}

// NewController creates a controller in the Idle state
func NewController(opts Options) (*Controller, error) {
	if opts.Reentry == "" {
		opts.Reentry = ReentryIgnore
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	download, err := anim.NewRun(0, 1, opts.DownloadDuration, opts.DownloadEasing)
	if err != nil {
		return nil, fmt.Errorf("download run: %w", err)
	}
	check, err := anim.NewRun(geometry.CheckHiddenOffset, geometry.CheckShownOffset, opts.CheckmarkDuration, opts.CheckmarkEasing)
	if err != nil {
		return nil, fmt.Errorf("checkmark run: %w", err)
	}

	return &Controller{
		opts:     opts,
		state:    model.StateIdle,
		download: download,
		check:    check,
	}, nil
}

// Options returns the options the controller was created with
func (c *Controller) Options() Options {
	return c.opts
}

// SetUpdateCallback sets the function notified after every state change
func (c *Controller) SetUpdateCallback(callback func(model.Frame)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// Start begins a new cycle on a press-began event
func (c *Controller) Start() error {
	c.mu.Lock()

	if !c.state.CanStart() {
		if c.opts.Reentry == ReentryIgnore {
			err := fmt.Errorf("cycle %s is %s: %w", c.shortID(), c.state, ErrReentrantStart)
			c.mu.Unlock()
			return err
		}
		log.Printf("transition %s: restarting from %s", c.shortID(), c.state)
	}

	c.resetLocked()
	c.cycleID = uuid.NewString()
	c.download.Start()
	c.setStateLocked(model.StateDownloading)

	c.notifyLocked()
	return nil
}

// Cancel drops the running cycle and returns to Idle
func (c *Controller) Cancel() {
	c.mu.Lock()
	if c.state == model.StateIdle {
		c.mu.Unlock()
		return
	}
	c.resetLocked()
	c.setStateLocked(model.StateIdle)
	c.cycleID = ""
	c.notifyLocked()
}

// Tick advances the active run by dt. A download completion starts the
// checkmark in the same tick.
func (c *Controller) Tick(dt time.Duration) {
	c.mu.Lock()

	changed := false
	switch c.state {
	case model.StateDownloading:
		if c.download.Advance(dt) {
			c.download.Settle()
			if c.completed.Update(true) {
				c.check.Start()
				c.setStateLocked(model.StateCompleting)
				changed = true
			}
		}
	case model.StateCompleting:
		if c.check.Advance(dt) {
			if c.opts.LoopCheckmark {
				c.check.Start()
			} else {
				c.check.Settle()
				c.setStateLocked(model.StateDone)
				changed = true
			}
		}
	}

	if changed {
		c.notifyLocked()
		return
	}
	c.mu.Unlock()
}

// Snapshot returns the values to draw this frame
func (c *Controller) Snapshot() model.Frame {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frameLocked()
}

// State returns the current transition state
func (c *Controller) State() model.TransitionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) frameLocked() model.Frame {
	progress := c.download.Value()
	return model.Frame{
		State:           c.state,
		CycleID:         c.cycleID,
		Progress:        progress,
		RingDashOffset:  geometry.RingDashOffset(progress),
		CheckDashOffset: c.check.Value(),
		IdleOpacity:     geometry.IdleOpacity(progress),
		Downloading:     c.state != model.StateIdle,
	}
}

// resetLocked zeroes both runs and the completion edge
func (c *Controller) resetLocked() {
	c.download.Reset()
	c.check.Reset()
	c.completed.Reset()
}

func (c *Controller) setStateLocked(state model.TransitionState) {
	if c.state == state {
		return
	}
	log.Printf("transition %s: %s -> %s", c.shortID(), c.state, state)
	c.state = state
}

// notifyLocked releases the lock and calls the update callback if set
func (c *Controller) notifyLocked() {
	callback := c.onUpdate
	frame := c.frameLocked()
	c.mu.Unlock()

	if callback != nil {
		callback(frame)
	}
}

func (c *Controller) shortID() string {
	if len(c.cycleID) < 8 {
		return "-"
	}
	return c.cycleID[:8]
}
