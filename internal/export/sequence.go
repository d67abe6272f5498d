package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ytget/download-check/internal/model"
	"github.com/ytget/download-check/internal/platform"
	"github.com/ytget/download-check/internal/render"
	"github.com/ytget/download-check/internal/transition"
)

// Defaults for a sequence
const (
	DefaultFPS         = 30
	DefaultWidth       = 300
	DefaultHeight      = 250
	DefaultMaxDuration = 30 * time.Second
)

// ErrInvalidOptions is returned for a frame rate or image size that cannot be
// played
var ErrInvalidOptions = errors.New("invalid export options")

// Options configures a sequence
type Options struct {
	FPS    int
	Width  int
	Height int

	// Hold keeps rendering the Done frame for this long
	Hold time.Duration

	// MaxDuration stops a cycle that never reaches Done, e.g. a looping checkmark
	MaxDuration time.Duration
}

// DefaultOptions returns 30 fps at 300x250 with no hold
func DefaultOptions() Options {
	return Options{
		FPS:         DefaultFPS,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxDuration: DefaultMaxDuration,
	}
}

// Validate checks the options
func (o Options) Validate() error {
	if o.FPS <= 0 || o.FrameInterval() <= 0 {
		return fmt.Errorf("fps %d: %w", o.FPS, ErrInvalidOptions)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", o.Width, o.Height, ErrInvalidOptions)
	}
	if o.MaxDuration <= 0 {
		return fmt.Errorf("max duration %s: %w", o.MaxDuration, ErrInvalidOptions)
	}
	return nil
}

// FrameInterval returns the simulated time between two frames
func (o Options) FrameInterval() time.Duration {
	return time.Second / time.Duration(o.FPS)
}

// Result summarizes a played sequence
type Result struct {
	Frames   int
	Duration time.Duration
	Final    model.TransitionState
	Files    []string
}

// EmitFunc receives every rendered frame
type EmitFunc func(index int, frame model.Frame, img *image.RGBA) error

// Play renders the idle frame, presses once and then ticks ctrl at the frame
// rate until the cycle is Done and the hold has passed.
func Play(ctx context.Context, ctrl transition.Transitioner, r *render.Renderer, opts Options, emit EmitFunc) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	emitFrame := func() error {
		frame := ctrl.Snapshot()
		if err := r.Draw(img, frame); err != nil {
			return fmt.Errorf("render frame %d: %w", res.Frames, err)
		}
		if err := emit(res.Frames, frame, img); err != nil {
			return fmt.Errorf("emit frame %d: %w", res.Frames, err)
		}
		res.Frames++
		return nil
	}

	if err := emitFrame(); err != nil {
		return res, err
	}
	if err := ctrl.Start(); err != nil {
		return res, fmt.Errorf("start cycle: %w", err)
	}

	dt := opts.FrameInterval()
	var held time.Duration
	for res.Duration < opts.MaxDuration {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		ctrl.Tick(dt)
		res.Duration += dt
		if err := emitFrame(); err != nil {
			return res, err
		}

		if ctrl.State().IsFinished() {
			if held >= opts.Hold {
				break
			}
			held += dt
		}
	}

	res.Final = ctrl.State()
	if !res.Final.IsFinished() {
		log.Printf("export: stopped after %s in state %s", res.Duration, res.Final)
	}
	return res, nil
}

// WritePNGs plays a sequence into dir as frame_NNNN.png files.
// Frames left over from an earlier export are removed first.
func WritePNGs(ctx context.Context, ctrl transition.Transitioner, r *render.Renderer, opts Options, dir string) (Result, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	if removed, err := platform.RemoveFrameFiles(dir); err != nil {
		return Result{}, err
	} else if removed > 0 {
		log.Printf("export: removed %d old frames from %s", removed, dir)
	}

	var files []string
	res, err := Play(ctx, ctrl, r, opts, func(index int, _ model.Frame, img *image.RGBA) error {
		path := filepath.Join(dir, platform.FrameFileName(index))
		if err := writePNG(path, img); err != nil {
			return err
		}
		files = append(files, path)
		return nil
	})
	res.Files = files
	return res, err
}

func writePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
