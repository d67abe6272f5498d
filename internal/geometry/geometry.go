package geometry

import "math"

// Icon geometry in the path units of the 0 0 6 5 ring view box
const (
	ViewBoxWidth  = 6.0
	ViewBoxHeight = 5.0

	RingCenterX     = 3.0
	RingCenterY     = 2.5
	RingRadius      = 2.0
	RingStrokeWidth = 0.5
)

// Circumference of the progress ring
var Circumference = 2 * math.Pi * RingRadius

// Checkmark stroke, drawn at half scale from (1.5, 1.25) inside the ring view box
const (
	CheckPath        = "M5 1L2 4L1 3"
	CheckOffsetX     = 1.5
	CheckOffsetY     = 1.25
	CheckScale       = 0.5
	CheckStrokeWidth = 1.0

	// CheckDash is both the dash and the gap length of the checkmark stroke
	CheckDash = 6.0

	// CheckHiddenOffset shifts the gap over the whole path
	CheckHiddenOffset = 6.0

	// CheckShownOffset shifts the dash over the whole path
	CheckShownOffset = 12.0
)

// CheckPathLength is the length of CheckPath before scaling
var CheckPathLength = 4 * math.Sqrt2

// Download glyph in its own 0 0 24 24 view box
const (
	GlyphViewBox = 24.0
	GlyphPath    = "M19 9.5H15V3.5H9V9.5H5L12 16.5L19 9.5ZM11 11.5V5.5H13V11.5H14.17L12 13.67L9.83002 11.5H11ZM19 20.5V18.5H5V20.5H19Z"

	GlyphFillOpacity = 0.54
)

// Nominal on-screen sizes at the reference width
const (
	ReferenceWidth = 375.0
	RingSize       = 200.0
	GlyphSize      = 50.0
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Interpolate maps v from [inLo, inHi] to [outLo, outHi] linearly,
// clamping to the output range outside the input range.
func Interpolate(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	t := Clamp((v-inLo)/(inHi-inLo), 0, 1)
	return outLo + (outHi-outLo)*t
}

// RingDashOffset returns the ring dash offset for download progress in [0, 1].
// A full circumference hides the ring and zero draws it completely.
func RingDashOffset(progress float64) float64 {
	return Circumference * (1 - Clamp(progress, 0, 1))
}

// IdleOpacity fades the download glyph out as progress goes from 0 to 1
func IdleOpacity(progress float64) float64 {
	return Interpolate(progress, 0, 1, 1, 0)
}

// Scale maps a size designed against reference onto target
func Scale(reference, target, size float64) float64 {
	if reference <= 0 {
		return size
	}
	return size * target / reference
}
