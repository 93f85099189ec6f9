package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Text      lipgloss.Color
	Selected  lipgloss.Color
	Border    lipgloss.Color
	UserMsg   lipgloss.Color
	ClawMsg   lipgloss.Color
	Queue     lipgloss.Color
	Progress  lipgloss.Color
	Completed lipgloss.Color
	P1        lipgloss.Color
	P2        lipgloss.Color
	P3        lipgloss.Color
	P4        lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Text:      lipgloss.Color("#DFE6E9"), // Light gray
	Selected:  lipgloss.Color("#FFEAA7"), // Yellow
	Border:    lipgloss.Color("#4B5563"), // Slate
	UserMsg:   lipgloss.Color("#74B9FF"), // Light blue
	ClawMsg:   lipgloss.Color("#B2BEC3"), // Silver
	Queue:     lipgloss.Color("#74B9FF"), // Blue
	Progress:  lipgloss.Color("#FDCB6E"), // Amber
	Completed: lipgloss.Color("#00B894"), // Green
	P1:        lipgloss.Color("#FF7675"), // Red
	P2:        lipgloss.Color("#FDCB6E"), // Amber
	P3:        lipgloss.Color("#74B9FF"), // Blue
	P4:        lipgloss.Color("#B2BEC3"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Board
	Column         lipgloss.Style
	ColumnFocused  lipgloss.Style
	ColumnTitle    lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CardDesc       lipgloss.Style
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	// Sidebar
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Timestamp  lipgloss.Style
	UserMsg    lipgloss.Style
	ClawMsg    lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Footer
	Footer   lipgloss.Style
	Notice   lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Border).
			Padding(0, 1),

		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			Foreground(Colors.Text).
			PaddingLeft(1),

		CardSelected: lipgloss.NewStyle().
			Foreground(Colors.Selected).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Colors.Selected),

		CardDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ProgressFilled: lipgloss.NewStyle().
			Foreground(Colors.Progress),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(Colors.Border),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Border).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Timestamp: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		UserMsg: lipgloss.NewStyle().
			Foreground(Colors.UserMsg).
			Align(lipgloss.Right),

		ClawMsg: lipgloss.NewStyle().
			Foreground(Colors.ClawMsg),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Border),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Completed),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StatusColor returns the accent color of a board column.
func StatusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusQueue:
		return Colors.Queue
	case domain.StatusInProgress:
		return Colors.Progress
	case domain.StatusCompleted:
		return Colors.Completed
	}
	return Colors.Muted
}

// PriorityStyle returns the badge style for a priority.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	color := Colors.P4
	switch p {
	case domain.PriorityP1:
		color = Colors.P1
	case domain.PriorityP2:
		color = Colors.P2
	case domain.PriorityP3:
		color = Colors.P3
	case domain.PriorityP4:
		color = Colors.P4
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
