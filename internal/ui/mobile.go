package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/download-check/internal/geometry"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// ScaledSize maps a size designed for the nominal screen width onto canvasWidth
func (m *MobileUI) ScaledSize(canvasWidth float32, size float64) float32 {
	return float32(geometry.Scale(geometry.ReferenceWidth, float64(canvasWidth), size))
}

// IconSize returns the ring icon size for a canvas of the given width.
// The icon keeps the 6:5 aspect of its view box and never drops below MinIconWidth.
func (m *MobileUI) IconSize(canvasWidth float32) fyne.Size {
	w := m.ScaledSize(canvasWidth, geometry.RingSize)
	if w < MinIconWidth {
		w = MinIconWidth
	}
	return fyne.NewSize(w, w*float32(geometry.ViewBoxHeight/geometry.ViewBoxWidth))
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10
}
