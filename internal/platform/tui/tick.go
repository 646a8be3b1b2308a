// Package tui provides the Bubble Tea integration for the game: the frame
// driver host, input mapping, rendering, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display refresh to drive a frame step.
type FrameMsg time.Time

// SecondMsg is the independent once-per-second timer trigger.
type SecondMsg time.Time

// frameCmd returns a command that sends frame messages at the tick rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// secondCmd returns a command that sends one timer message per second.
func secondCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg(t)
	})
}
