// Package tui provides the terminal user interface for mission-control.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Board navigation
	ModeCommand             // Typing a message for OpenClaw
	ModeNewTask             // Typing the title of a new task
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCommand:
		return "command"
	case ModeNewTask:
		return "new_task"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeCommand, ModeNewTask:
		return true
	case ModeNormal, ModeHelp:
		return false
	}
	return false
}
