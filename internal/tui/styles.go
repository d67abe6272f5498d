package tui

import "github.com/charmbracelet/lipgloss"

var (
	ringColor  = lipgloss.Color("#00c800")
	checkColor = lipgloss.Color("#00a000")
	glyphColor = lipgloss.Color("#ffffff")
	dimColor   = lipgloss.Color("#565f89")
	noticeRed  = lipgloss.Color("#f7768e")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(glyphColor).
			MarginBottom(1)

	ringStyle = lipgloss.NewStyle().
			Foreground(ringColor)

	ringTrackStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	checkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(checkColor)

	glyphStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(glyphColor)

	glyphFadedStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(glyphColor)

	stateStyle = lipgloss.NewStyle().
			Foreground(glyphColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			MarginTop(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(noticeRed)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(1, 3)
)
