package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sanirudh17/mission-control/internal/app"
)

// Run starts the board TUI and blocks until the user quits.
// Pending OpenClaw replies are flushed before returning.
func Run(c *app.Container) error {
	m := New(c)
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	if c.Responder != nil {
		c.Responder.Wait()
	}
	return nil
}
