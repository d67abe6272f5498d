package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/ytget/download-check/internal/geometry"
	"github.com/ytget/download-check/internal/model"
)

// Renderer rasterizes frames into RGBA images
type Renderer struct {
	mu    sync.Mutex
	style Style
	glyph *oksvg.SvgIcon
}

// NewRenderer parses the static glyph once and returns a renderer
func NewRenderer(style Style) (*Renderer, error) {
	glyph, err := oksvg.ReadIconStream(strings.NewReader(GlyphDocument(style)), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse glyph: %w", err)
	}
	return &Renderer{style: style, glyph: glyph}, nil
}

// Style returns the colors the renderer paints with
func (r *Renderer) Style() Style {
	return r.style
}

// Render draws f into a new w x h image
func (r *Renderer) Render(f model.Frame, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := r.Draw(img, f); err != nil {
		return nil, err
	}
	return img, nil
}

// Draw paints f over the whole of dst
func (r *Renderer) Draw(dst *image.RGBA, f model.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	draw.Draw(dst, bounds, image.NewUniform(r.style.Background), image.Point{}, draw.Src)

	box := Fit(w, h)
	ring, err := oksvg.ReadIconStream(strings.NewReader(RingDocument(f, r.style, box.Scale)), oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("parse ring frame: %w", err)
	}
	ring.SetTarget(box.X, box.Y, box.W, box.H)

	scanner := rasterx.NewScannerGV(w, h, dst, bounds)
	dasher := rasterx.NewDasher(w, h, scanner)
	ring.Draw(dasher, 1.0)

	if opacity := f.GlyphOpacity(); opacity > 0 {
		size := box.W * geometry.GlyphSize / geometry.RingSize
		r.glyph.SetTarget(float64(w)/2-size/2, float64(h)/2-size/2, size, size)
		r.glyph.Draw(dasher, opacity)
	}
	return nil
}

// Box is where the ring view box lands inside an image
type Box struct {
	X, Y, W, H float64
	Scale      float64 // pixels per view box unit
}

// Fit centers the ring view box inside a w x h image, preserving its aspect ratio
func Fit(w, h int) Box {
	scale := math.Min(float64(w)/geometry.ViewBoxWidth, float64(h)/geometry.ViewBoxHeight)
	bw, bh := geometry.ViewBoxWidth*scale, geometry.ViewBoxHeight*scale
	return Box{
		X:     (float64(w) - bw) / 2,
		Y:     (float64(h) - bh) / 2,
		W:     bw,
		H:     bh,
		Scale: scale,
	}
}
