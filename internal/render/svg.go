package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/download-check/internal/geometry"
	"github.com/ytget/download-check/internal/model"
)

// RingDocument describes the progress ring and checkmark for one frame.
// px is the number of pixels per view box unit the document will be drawn at.
func RingDocument(f model.Frame, style Style, px float64) string {
	checkPx := px * geometry.CheckScale

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`,
		num(geometry.ViewBoxWidth), num(geometry.ViewBoxHeight), num(geometry.ViewBoxWidth), num(geometry.ViewBoxHeight))
	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s" stroke-dasharray="%s" stroke-dashoffset="%s"/>`,
		num(geometry.RingCenterX), num(geometry.RingCenterY), num(geometry.RingRadius),
		style.RingColor,
		num(geometry.RingStrokeWidth*px),
		num(geometry.Circumference*px),
		num(f.RingDashOffset*px),
	)
	fmt.Fprintf(&b, `<path d="%s" transform="translate(%s %s) scale(%s)" fill="none" stroke="%s" stroke-width="%s" stroke-dasharray="%s" stroke-dashoffset="%s"/>`,
		geometry.CheckPath,
		num(geometry.CheckOffsetX), num(geometry.CheckOffsetY), num(geometry.CheckScale),
		style.CheckColor,
		num(geometry.CheckStrokeWidth*checkPx),
		num(geometry.CheckDash*checkPx),
		num(f.CheckDashOffset*checkPx),
	)
	b.WriteString(`</svg>`)
	return b.String()
}

// GlyphDocument describes the idle download glyph
func GlyphDocument(style Style) string {
	size := num(geometry.GlyphViewBox)
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"><path d="%s" fill="%s" fill-opacity="%s"/></svg>`,
		size, size, size, size,
		geometry.GlyphPath,
		style.GlyphColor,
		num(geometry.GlyphFillOpacity),
	)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
