// Package tui provides the Bubble Tea driver for Pocket Dragon.
// It schedules the once-per-second tick, maps keys to game actions and renders state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the wall-clock length of one game tick.
const TickInterval = time.Second

// TickMsg is sent to advance the game by one tick.
// Seq identifies the schedule that produced it; a tick from an older schedule
// (cancelled by pause, reset or game over) is dropped.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that delivers one tick for schedule seq.
func tickCmd(seq int) tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
