package render

import "image/color"

// Style holds the colors a frame is painted with
type Style struct {
	Background color.Color
	RingColor  string
	CheckColor string
	GlyphColor string
}

// DefaultStyle returns the dark palette of the screen
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x15, G: 0x15, B: 0x15, A: 0xff},
		RingColor:  "#00c800",
		CheckColor: "#006400",
		GlyphColor: "#ffffff",
	}
}
