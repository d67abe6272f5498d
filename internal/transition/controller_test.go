package transition

import (
	"errors"
	"math"
	"testing"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/download-check/internal/anim"
	"github.com/ytget/download-check/internal/geometry"
	"github.com/ytget/download-check/internal/model"
)

const epsilon = 1e-6

func linearOptions() Options {
	opts := DefaultOptions()
	opts.DownloadEasing = fyne.AnimationLinear
	opts.CheckmarkEasing = fyne.AnimationLinear
	return opts
}

func newTestController(t *testing.T, opts Options) *Controller {
	t.Helper()
	c, err := NewController(opts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return c
}

func TestNewController_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		target error
	}{
		{"zero download", func(o *Options) { o.DownloadDuration = 0 }, anim.ErrInvalidDuration},
		{"negative download", func(o *Options) { o.DownloadDuration = -time.Second }, anim.ErrInvalidDuration},
		{"zero checkmark", func(o *Options) { o.CheckmarkDuration = 0 }, anim.ErrInvalidDuration},
		{"bad policy", func(o *Options) { o.Reentry = "queue" }, nil},
	}

	for _, test := range tests {
		opts := DefaultOptions()
		test.modify(&opts)

		c, err := NewController(opts)
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if test.target != nil && !errors.Is(err, test.target) {
			t.Errorf("%s: error = %v, expected %v", test.name, err, test.target)
		}
		if c != nil {
			t.Errorf("%s: expected nil controller", test.name)
		}
	}
}

func TestNewController_DefaultsEmptyPolicy(t *testing.T) {
	opts := DefaultOptions()
	opts.Reentry = ""

	c := newTestController(t, opts)

	if c.Options().Reentry != ReentryIgnore {
		t.Errorf("Reentry = %q, expected %q", c.Options().Reentry, ReentryIgnore)
	}
}

func TestController_InitialFrame(t *testing.T) {
	c := newTestController(t, DefaultOptions())
	frame := c.Snapshot()

	if frame.State != model.StateIdle {
		t.Errorf("State = %s, expected Idle", frame.State)
	}
	if math.Abs(frame.RingDashOffset-2*math.Pi*2) > epsilon {
		t.Errorf("RingDashOffset = %v, expected full circumference %v", frame.RingDashOffset, 2*math.Pi*2)
	}
	if frame.CheckDashOffset != geometry.CheckHiddenOffset {
		t.Errorf("CheckDashOffset = %v, expected %v", frame.CheckDashOffset, geometry.CheckHiddenOffset)
	}
	if frame.IdleOpacity != 1 || frame.GlyphOpacity() != 1 {
		t.Errorf("IdleOpacity = %v, GlyphOpacity = %v, expected 1", frame.IdleOpacity, frame.GlyphOpacity())
	}
	if frame.Downloading {
		t.Error("Downloading flag set before any press")
	}
	if frame.CycleID != "" {
		t.Errorf("CycleID = %q before any press, expected empty", frame.CycleID)
	}
}

func TestController_LinearScenario(t *testing.T) {
	c := newTestController(t, linearOptions())

	if err := c.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	frame := c.Snapshot()
	if frame.State != model.StateDownloading || frame.Progress != 0 || !frame.Downloading {
		t.Fatalf("After Start: state=%s progress=%v downloading=%v", frame.State, frame.Progress, frame.Downloading)
	}

	c.Tick(1500 * time.Millisecond)
	frame = c.Snapshot()
	if math.Abs(frame.Progress-0.5) > epsilon {
		t.Errorf("Progress at 1500ms = %v, expected 0.5", frame.Progress)
	}
	if math.Abs(frame.IdleOpacity-0.5) > epsilon {
		t.Errorf("IdleOpacity at 1500ms = %v, expected 0.5", frame.IdleOpacity)
	}

	c.Tick(1500 * time.Millisecond)
	frame = c.Snapshot()
	if frame.Progress != 1 {
		t.Errorf("Progress at 3000ms = %v, expected 1", frame.Progress)
	}
	if frame.RingDashOffset != 0 {
		t.Errorf("RingDashOffset at 3000ms = %v, expected 0", frame.RingDashOffset)
	}
	if frame.State != model.StateCompleting {
		t.Errorf("State at 3000ms = %s, expected Completing on the same frame", frame.State)
	}
	if frame.CheckDashOffset != geometry.CheckHiddenOffset {
		t.Errorf("CheckDashOffset on the edge frame = %v, expected %v", frame.CheckDashOffset, geometry.CheckHiddenOffset)
	}
}

func TestController_CheckmarkNeverStartsEarly(t *testing.T) {
	c := newTestController(t, linearOptions())
	c.Start()

	for elapsed := 100 * time.Millisecond; elapsed < DefaultDownloadDuration; elapsed += 100 * time.Millisecond {
		c.Tick(100 * time.Millisecond)
		frame := c.Snapshot()
		if frame.State != model.StateDownloading {
			t.Fatalf("State at %s = %s, expected Downloading", elapsed, frame.State)
		}
		if frame.CheckDashOffset != geometry.CheckHiddenOffset {
			t.Fatalf("Checkmark moved at %s: %v", elapsed, frame.CheckDashOffset)
		}
	}
}

func TestController_FullCycleNotifications(t *testing.T) {
	c := newTestController(t, linearOptions())

	var states []model.TransitionState
	c.SetUpdateCallback(func(frame model.Frame) {
		states = append(states, frame.State)
	})

	c.Start()
	for i := 0; i < 100; i++ {
		c.Tick(100 * time.Millisecond)
	}

	expected := []model.TransitionState{model.StateDownloading, model.StateCompleting, model.StateDone}
	if len(states) != len(expected) {
		t.Fatalf("Got %d notifications %v, expected %v", len(states), states, expected)
	}
	for i := range expected {
		if states[i] != expected[i] {
			t.Errorf("Notification %d: state %s, expected %s", i, states[i], expected[i])
		}
	}

	frame := c.Snapshot()
	if frame.CheckDashOffset != geometry.CheckShownOffset {
		t.Errorf("CheckDashOffset in Done = %v, expected %v", frame.CheckDashOffset, geometry.CheckShownOffset)
	}
	if frame.GlyphOpacity() != 0 {
		t.Errorf("GlyphOpacity in Done = %v, expected 0", frame.GlyphOpacity())
	}
}

func TestController_LargeDeltaDoesNotSkipCompleting(t *testing.T) {
	c := newTestController(t, linearOptions())
	c.Start()

	c.Tick(time.Minute)
	if state := c.State(); state != model.StateCompleting {
		t.Fatalf("State after oversized tick = %s, expected Completing", state)
	}

	c.Tick(time.Minute)
	if state := c.State(); state != model.StateDone {
		t.Errorf("State after second oversized tick = %s, expected Done", state)
	}
}

func TestController_ReentryIgnore(t *testing.T) {
	c := newTestController(t, linearOptions())

	if err := c.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	firstCycle := c.Snapshot().CycleID
	c.Tick(100 * time.Millisecond)

	err := c.Start()
	if !errors.Is(err, ErrReentrantStart) {
		t.Fatalf("Second Start() error = %v, expected ErrReentrantStart", err)
	}

	frame := c.Snapshot()
	if frame.CycleID != firstCycle {
		t.Error("Ignored Start replaced the cycle id")
	}
	if math.Abs(frame.Progress-100.0/3000.0) > epsilon {
		t.Errorf("Progress after ignored Start = %v, expected %v", frame.Progress, 100.0/3000.0)
	}

	c.Tick(3 * time.Second)
	if err := c.Start(); !errors.Is(err, ErrReentrantStart) {
		t.Errorf("Start() while Completing error = %v, expected ErrReentrantStart", err)
	}
}

func TestController_ReentryRestart(t *testing.T) {
	opts := linearOptions()
	opts.Reentry = ReentryRestart
	c := newTestController(t, opts)

	c.Start()
	firstCycle := c.Snapshot().CycleID
	c.Tick(100 * time.Millisecond)

	if err := c.Start(); err != nil {
		t.Fatalf("Second Start() error = %v, expected nil", err)
	}

	frame := c.Snapshot()
	if frame.State != model.StateDownloading {
		t.Errorf("State after restart = %s, expected Downloading", frame.State)
	}
	if frame.Progress != 0 {
		t.Errorf("Progress after restart = %v, expected 0", frame.Progress)
	}
	if frame.CycleID == firstCycle {
		t.Error("Restart kept the previous cycle id")
	}

	// the restarted run must take its full duration
	c.Tick(2900 * time.Millisecond)
	if state := c.State(); state != model.StateDownloading {
		t.Errorf("State 2900ms after restart = %s, expected Downloading", state)
	}
}

func TestController_RestartDuringCompleting(t *testing.T) {
	opts := linearOptions()
	opts.Reentry = ReentryRestart
	c := newTestController(t, opts)

	c.Start()
	c.Tick(3 * time.Second)
	c.Tick(600 * time.Millisecond)

	c.Start()
	frame := c.Snapshot()
	if frame.State != model.StateDownloading {
		t.Errorf("State = %s, expected Downloading", frame.State)
	}
	if frame.CheckDashOffset != geometry.CheckHiddenOffset {
		t.Errorf("CheckDashOffset = %v, expected hidden %v", frame.CheckDashOffset, geometry.CheckHiddenOffset)
	}

	// a stale completion edge would jump straight to Completing here
	c.Tick(10 * time.Millisecond)
	if state := c.State(); state != model.StateDownloading {
		t.Errorf("State after short tick = %s, expected Downloading", state)
	}
}

func TestController_StartFromDone(t *testing.T) {
	c := newTestController(t, linearOptions())
	c.Start()
	c.Tick(3 * time.Second)
	c.Tick(2 * time.Second)
	if state := c.State(); state != model.StateDone {
		t.Fatalf("State = %s, expected Done", state)
	}

	if err := c.Start(); err != nil {
		t.Fatalf("Start() from Done error = %v", err)
	}

	frame := c.Snapshot()
	if frame.State != model.StateDownloading || frame.Progress != 0 || frame.CheckDashOffset != geometry.CheckHiddenOffset {
		t.Errorf("Frame after Start from Done = %+v", frame)
	}

	c.Tick(3 * time.Second)
	if state := c.State(); state != model.StateCompleting {
		t.Errorf("Second cycle did not reach Completing, state = %s", state)
	}
}

func TestController_Cancel(t *testing.T) {
	c := newTestController(t, linearOptions())

	notifications := 0
	c.SetUpdateCallback(func(model.Frame) { notifications++ })

	c.Cancel()
	if notifications != 0 {
		t.Errorf("Cancel while Idle notified %d times, expected 0", notifications)
	}

	c.Start()
	c.Tick(time.Second)
	c.Cancel()

	frame := c.Snapshot()
	if frame.State != model.StateIdle || frame.Progress != 0 || frame.Downloading || frame.CycleID != "" {
		t.Errorf("Frame after Cancel = %+v", frame)
	}
	if notifications != 2 {
		t.Errorf("Got %d notifications, expected 2", notifications)
	}

	c.Tick(5 * time.Second)
	if state := c.State(); state != model.StateIdle {
		t.Errorf("Tick after Cancel moved state to %s", state)
	}
}

func TestController_LoopCheckmark(t *testing.T) {
	opts := linearOptions()
	opts.LoopCheckmark = true
	c := newTestController(t, opts)

	c.Start()
	c.Tick(3 * time.Second)
	c.Tick(DefaultCheckmarkDuration)

	frame := c.Snapshot()
	if frame.State != model.StateCompleting {
		t.Errorf("State after checkmark run = %s, expected Completing while looping", frame.State)
	}
	if frame.CheckDashOffset != geometry.CheckHiddenOffset {
		t.Errorf("CheckDashOffset after loop restart = %v, expected %v", frame.CheckDashOffset, geometry.CheckHiddenOffset)
	}

	c.Tick(DefaultCheckmarkDuration / 2)
	if v := c.Snapshot().CheckDashOffset; math.Abs(v-9) > epsilon {
		t.Errorf("CheckDashOffset halfway through second loop = %v, expected 9", v)
	}
}

func TestParseReentryPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    ReentryPolicy
		wantErr bool
	}{
		{"ignore", ReentryIgnore, false},
		{"restart", ReentryRestart, false},
		{"queue", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		got, err := ParseReentryPolicy(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseReentryPolicy(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
		}
		if got != test.want {
			t.Errorf("ParseReentryPolicy(%q) = %q, expected %q", test.input, got, test.want)
		}
	}
}
