// Package tui provides the Bubble Tea adapter around a snake session.
// It maps keys to intents, schedules ticks and renders the board; all game
// rules live in the snake package.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Model is the id of the play model whose loop scheduled it, so a model
// ignores ticks left over from one it replaced.
type TickMsg struct {
	Time  time.Time
	Model int64
}

var modelIDs atomic.Int64

func nextModelID() int64 {
	return modelIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration, id int64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Model: id}
	})
}
