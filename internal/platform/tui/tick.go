// Package tui hosts a flappy session in the terminal with Bubble Tea.
// It handles the tick loop, input mapping and screen rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// TickMsg is sent to trigger a simulation tick for one run. Ticks that
// belong to a superseded run are dropped.
type TickMsg struct {
	Run  flappy.RunID
	Time time.Time
}

// startMsg asks the model to begin a new run.
type startMsg struct{}

// tickCmd returns a Bubble Tea command that sends one tick for run after a
// frame interval at the given rate.
func tickCmd(run flappy.RunID, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Run: run, Time: t}
	})
}

func startCmd() tea.Msg {
	return startMsg{}
}
