// Package tui provides the Bubble Tea integration for the gold mine.
// It handles the terminal UI loop, input mapping, and rendering; all game
// rules live in the engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. It carries the wall-clock
// time so the model can credit real elapsed time, not a fixed step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate (ticks per second).
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
