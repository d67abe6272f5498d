package ui

import (
	"fmt"
	"testing"
	"time"

	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/download-check/internal/model"
	"github.com/ytget/download-check/internal/render"
	"github.com/ytget/download-check/internal/transition"
)

// fakeTransitioner records calls made by the icon
type fakeTransitioner struct {
	starts   int
	ticks    []time.Duration
	state    model.TransitionState
	startErr error
}

func (f *fakeTransitioner) SetUpdateCallback(func(model.Frame)) {}

func (f *fakeTransitioner) Start() error {
	f.starts++
	if f.startErr != nil {
		return f.startErr
	}
	f.state = model.StateDownloading
	return nil
}

func (f *fakeTransitioner) Cancel() { f.state = model.StateIdle }

func (f *fakeTransitioner) Tick(dt time.Duration) { f.ticks = append(f.ticks, dt) }

func (f *fakeTransitioner) Snapshot() model.Frame {
	return model.Frame{State: f.state, IdleOpacity: 1}
}

func (f *fakeTransitioner) State() model.TransitionState { return f.state }

func newTestIcon(t *testing.T, ctrl transition.Transitioner) *TransitionIcon {
	t.Helper()
	renderer, err := render.NewRenderer(render.DefaultStyle())
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewTransitionIcon(ctrl, renderer)
}

func TestTransitionIcon_MousePress(t *testing.T) {
	test.NewApp()
	fake := &fakeTransitioner{state: model.StateIdle}
	icon := newTestIcon(t, fake)

	primary := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	icon.MouseDown(primary)
	icon.MouseDown(primary)
	if fake.starts != 1 {
		t.Errorf("starts = %d, expected 1 for a held button", fake.starts)
	}

	icon.MouseUp(primary)
	icon.MouseDown(primary)
	if fake.starts != 2 {
		t.Errorf("starts = %d, expected 2 after release and press", fake.starts)
	}

	icon.MouseUp(primary)
	icon.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	if fake.starts != 2 {
		t.Errorf("starts = %d, expected secondary button to be ignored", fake.starts)
	}
}

func TestTransitionIcon_Touch(t *testing.T) {
	test.NewApp()
	fake := &fakeTransitioner{state: model.StateIdle}
	icon := newTestIcon(t, fake)

	icon.TouchDown(&mobile.TouchEvent{})
	icon.TouchDown(&mobile.TouchEvent{})
	icon.TouchCancel(&mobile.TouchEvent{})
	icon.TouchDown(&mobile.TouchEvent{})
	icon.TouchUp(&mobile.TouchEvent{})

	if fake.starts != 2 {
		t.Errorf("starts = %d, expected 2", fake.starts)
	}
}

func TestTransitionIcon_Rejected(t *testing.T) {
	test.NewApp()
	fake := &fakeTransitioner{
		state:    model.StateDownloading,
		startErr: fmt.Errorf("busy: %w", transition.ErrReentrantStart),
	}
	icon := newTestIcon(t, fake)

	var rejected error
	icon.OnRejected = func(err error) { rejected = err }

	icon.TouchDown(&mobile.TouchEvent{})
	if rejected == nil {
		t.Error("Expected OnRejected to be called")
	}
}

func TestTransitionIcon_Advance(t *testing.T) {
	test.NewApp()
	fake := &fakeTransitioner{state: model.StateIdle}
	icon := newTestIcon(t, fake)

	icon.Advance(16 * time.Millisecond)
	if len(fake.ticks) != 1 || fake.ticks[0] != 16*time.Millisecond {
		t.Errorf("ticks = %v, expected [16ms]", fake.ticks)
	}
}

func TestTransitionIcon_SetController(t *testing.T) {
	test.NewApp()
	first := &fakeTransitioner{state: model.StateIdle}
	second := &fakeTransitioner{state: model.StateIdle}
	icon := newTestIcon(t, first)

	icon.TouchDown(&mobile.TouchEvent{})
	icon.SetController(second)
	if icon.Controller() != second {
		t.Error("Controller() did not return the new controller")
	}

	// the swap forgets the held press
	icon.TouchDown(&mobile.TouchEvent{})
	if first.starts != 1 || second.starts != 1 {
		t.Errorf("starts = %d/%d, expected 1/1", first.starts, second.starts)
	}
}

func TestTransitionIcon_Draw(t *testing.T) {
	test.NewApp()
	icon := newTestIcon(t, &fakeTransitioner{state: model.StateIdle})

	img := icon.draw(120, 100)
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 100 {
		t.Errorf("draw(120, 100) bounds = %v", b)
	}

	// invalid sizes fall back to a blank pixel
	if b := icon.draw(0, 0).Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("draw(0, 0) bounds = %v, expected 1x1", b)
	}
}
