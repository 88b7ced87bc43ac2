// Package tui provides the Bubble Tea frontend for Breakout.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the tick
// generation that scheduled it. A model takes a new ID for every game and
// ignores ticks carrying any other.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var lastModelID atomic.Int64

func nextModelID() int64 {
	return lastModelID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick for generation id after
// delay.
func tickCmd(id int64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
