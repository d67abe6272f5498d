package transition

import (
	"time"

	"github.com/ytget/download-check/internal/model"
)

// Transitioner defines the interface renderers and input sources use to drive the controller.
type Transitioner interface {
	SetUpdateCallback(func(model.Frame))
	Start() error
	Cancel()
	Tick(dt time.Duration)
	Snapshot() model.Frame
	State() model.TransitionState
}
