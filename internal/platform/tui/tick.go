// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH with Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg wakes the model up to run due simulation steps.
type TickMsg time.Time

// tickCmd schedules the next TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
