// Package tui provides the Bubble Tea front-end: difficulty menu, game view,
// scoreboard, and an SSH server that serves the same program over Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultFPS = 60

// FrameMsg is sent once per rendered frame. The session converts the time
// between frames into simulation ticks.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = defaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
