package model

// Frame is a read-only snapshot of the values a renderer needs for one frame
type Frame struct {
	State           TransitionState
	CycleID         string  // id of the current press cycle, empty while idle
	Progress        float64 // download run value, 0.0 to 1.0
	RingDashOffset  float64 // dash offset of the progress ring in path units
	CheckDashOffset float64 // dash offset of the checkmark in path units
	IdleOpacity     float64 // opacity of the download glyph, 0.0 to 1.0
	Downloading     bool    // set from the press until the cycle is reset
}

// GlyphOpacity returns the opacity the download glyph should be drawn with
func (f Frame) GlyphOpacity() float64 {
	if !f.Downloading {
		return 1
	}
	return f.IdleOpacity
}

// Percent returns download progress as an integer percentage
func (f Frame) Percent() int {
	p := int(f.Progress*100 + 0.5)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
