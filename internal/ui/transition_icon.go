package ui

import (
	"errors"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/download-check/internal/model"
	"github.com/ytget/download-check/internal/render"
	"github.com/ytget/download-check/internal/transition"
)

// TransitionIcon is the tappable download icon. It draws the controller's
// current frame and starts a cycle on every press-began edge.
type TransitionIcon struct {
	widget.BaseWidget

	mu       sync.RWMutex
	ctrl     transition.Transitioner
	renderer *render.Renderer

	press  *PressTracker
	raster *canvas.Raster

	// OnRejected is called when a press is refused by the controller
	OnRejected func(error)

	// OnAdvance receives the frame after every tick that repainted the icon
	OnAdvance func(model.Frame)
}

// NewTransitionIcon creates an icon bound to ctrl
func NewTransitionIcon(ctrl transition.Transitioner, renderer *render.Renderer) *TransitionIcon {
	ti := &TransitionIcon{
		ctrl:     ctrl,
		renderer: renderer,
	}
	ti.press = NewPressTracker(ti.onPressBegan)
	ti.raster = canvas.NewRaster(ti.draw)
	ti.raster.ScaleMode = canvas.ImageScaleSmooth
	ti.ExtendBaseWidget(ti)
	return ti
}

// CreateRenderer implements fyne.Widget
func (ti *TransitionIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ti.raster)
}

// SetIconSize sets the minimum size of the icon
func (ti *TransitionIcon) SetIconSize(size fyne.Size) {
	ti.raster.SetMinSize(size)
	ti.Refresh()
}

// SetController swaps the controller, e.g. after the settings changed
func (ti *TransitionIcon) SetController(ctrl transition.Transitioner) {
	ti.mu.Lock()
	ti.ctrl = ctrl
	ti.mu.Unlock()
	ti.press.Cancel()
	ti.raster.Refresh()
}

// Controller returns the controller the icon drives
func (ti *TransitionIcon) Controller() transition.Transitioner {
	ti.mu.RLock()
	defer ti.mu.RUnlock()
	return ti.ctrl
}

// Advance ticks the controller by dt and repaints while something animates
func (ti *TransitionIcon) Advance(dt time.Duration) {
	ctrl := ti.Controller()
	before := ctrl.State()
	ctrl.Tick(dt)
	if before.IsActive() || ctrl.State() != before {
		ti.raster.Refresh()
		if ti.OnAdvance != nil {
			ti.OnAdvance(ctrl.Snapshot())
		}
	}
}

func (ti *TransitionIcon) onPressBegan() {
	if err := ti.Controller().Start(); err != nil {
		if errors.Is(err, transition.ErrReentrantStart) {
			log.Printf("press ignored: %v", err)
		} else {
			log.Printf("failed to start transition: %v", err)
		}
		if ti.OnRejected != nil {
			ti.OnRejected(err)
		}
		return
	}
	ti.raster.Refresh()
}

func (ti *TransitionIcon) draw(w, h int) image.Image {
	frame := ti.Controller().Snapshot()
	img, err := ti.renderer.Render(frame, w, h)
	if err != nil {
		log.Printf("render frame %s: %v", frame.State, err)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return img
}
