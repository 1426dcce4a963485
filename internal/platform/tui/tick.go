// Package tui provides the Bubble Tea front-end for Sky Battle.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Epoch identifies the tick chain that
// produced it; ticks from an abandoned chain are dropped so that restarting
// or leaving a game never leaves two chains running.
type TickMsg struct {
	Epoch int
	Time  time.Time
}

// tickCmd schedules the next tick of the given chain.
func tickCmd(interval time.Duration, epoch int) tea.Cmd {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}
