package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Task actions
	MoveLeft     key.Binding // Move task to the previous column
	MoveRight    key.Binding // Move task to the next column
	ProgressUp   key.Binding // Increase progress by ten
	ProgressDown key.Binding // Decrease progress by ten
	New          key.Binding // Create a task

	// View
	Command      key.Binding // Focus the command input
	ToggleSource key.Binding // Toggle between the board source and all sources
	Help         key.Binding // Show help

	// General
	Submit key.Binding // Submit input
	Escape key.Binding // Cancel/back
	Quit   key.Binding // Quit application
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("<", "H", "shift+left"),
			key.WithHelp("</H", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys(">", "L", "shift+right"),
			key.WithHelp(">/L", "move right"),
		),
		ProgressUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "progress +10"),
		),
		ProgressDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "progress -10"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Command: key.NewBinding(
			key.WithKeys(":", "tab"),
			key.WithHelp(":", "command"),
		),
		ToggleSource: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all sources"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.MoveLeft, k.MoveRight, k.New, k.Command, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.MoveLeft, k.MoveRight, k.ProgressUp, k.ProgressDown, k.New},
		{k.Command, k.ToggleSource, k.Help, k.Escape, k.Quit},
	}
}
