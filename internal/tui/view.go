package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/download-check/internal/geometry"
	"github.com/ytget/download-check/internal/model"
)

// RingWidth is the number of cells of the progress bar
const RingWidth = 24

const glyph = "⬇"

// checkCell is one cell of the checkmark stroke
type checkCell struct {
	row, col int
	r        rune
}

// checkStroke lists the checkmark cells in drawing order: the long arm from the
// top right down to the tip, then the short arm up to the left.
var checkStroke = []checkCell{
	{0, 6, '╱'},
	{1, 5, '╱'},
	{2, 4, '╱'},
	{3, 3, '╱'},
	{2, 2, '╲'},
	{1, 1, '╲'},
}

const (
	checkRows = 4
	checkCols = 7
)

// View renders the current frame
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	f := m.ctrl.Snapshot()

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(RenderRing(f))
	b.WriteString("\n\n")
	b.WriteString(RenderCenter(f))
	b.WriteString("\n")
	b.WriteString(stateStyle.Render(fmt.Sprintf("%-11s %3d%%", f.State, f.Percent())))
	if m.notice != "" {
		b.WriteString("  ")
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return frameStyle.Render(b.String())
}

// RingCells returns how many progress bar cells are lit for f.
// It follows the ring dash offset: a full circumference lights nothing.
func RingCells(f model.Frame) int {
	drawn := 1 - f.RingDashOffset/geometry.Circumference
	return int(math.Round(geometry.Clamp(drawn, 0, 1) * RingWidth))
}

// RenderRing draws the progress ring as a bar
func RenderRing(f model.Frame) string {
	lit := RingCells(f)
	return ringStyle.Render(strings.Repeat("█", lit)) +
		ringTrackStyle.Render(strings.Repeat("░", RingWidth-lit))
}

// CheckCells returns how many cells of the checkmark stroke are drawn for f
func CheckCells(f model.Frame) int {
	drawn := geometry.Interpolate(f.CheckDashOffset, geometry.CheckHiddenOffset, geometry.CheckShownOffset, 0, 1)
	return int(math.Round(drawn * float64(len(checkStroke))))
}

// RenderCenter draws the idle glyph while it is visible, then the checkmark
func RenderCenter(f model.Frame) string {
	grid := make([][]rune, checkRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", checkCols))
	}
	for _, c := range checkStroke[:CheckCells(f)] {
		grid[c.row][c.col] = c.r
	}

	lines := make([]string, checkRows)
	for i, row := range grid {
		lines[i] = checkStyle.Render(string(row))
	}

	if opacity := f.GlyphOpacity(); opacity > 0 {
		style := glyphStyle
		if opacity < 0.5 {
			style = glyphFadedStyle
		}
		lines[1] = lipgloss.PlaceHorizontal(checkCols, lipgloss.Center, style.Render(glyph))
	}
	return strings.Join(lines, "\n")
}
