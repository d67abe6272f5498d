package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/download-check/internal/transition"
)

// FrameInterval is the time between two frame messages
const FrameInterval = time.Second / 30

// FrameMsg is sent on every frame of the preview
type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Model is the bubbletea model of the preview
type Model struct {
	ctrl     transition.Transitioner
	keys     keyMap
	help     help.Model
	title    string
	last     time.Time
	width    int
	notice   string
	quitting bool
}

// New creates a preview of ctrl
func New(ctrl transition.Transitioner, title string) Model {
	return Model{
		ctrl:  ctrl,
		keys:  defaultKeyMap(),
		help:  help.New(),
		title: title,
	}
}

// Init starts the frame clock
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update handles frames and key presses
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			if dt := now.Sub(m.last); dt > 0 {
				m.ctrl.Tick(dt)
			}
		}
		m.last = now
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tap):
			m.notice = ""
			if err := m.ctrl.Start(); err != nil {
				if errors.Is(err, transition.ErrReentrantStart) {
					m.notice = "already animating"
				} else {
					m.notice = err.Error()
				}
			}
		case key.Matches(msg, m.keys.Reset):
			m.notice = ""
			m.ctrl.Cancel()
		}
	}
	return m, nil
}

// Quitting reports whether the user asked to leave
func (m Model) Quitting() bool {
	return m.quitting
}

// Notice returns the last message shown under the icon
func (m Model) Notice() string {
	return m.notice
}
