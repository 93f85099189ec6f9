package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.commandInput.Width = max(m.sidebarWidth()-8, 10)
		m.titleInput.Width = max(m.boardWidth()-16, 10)
		return m, nil

	case MsgSnapshot:
		m.setSnapshot(msg.Snapshot)
		return m, m.waitForSnapshot()

	case MsgSubscriptionClosed:
		m.updates = nil
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.notice = ""
		return m, nil

	case MsgNotice:
		m.err = nil
		m.notice = msg.Text
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.String() == "ctrl+c" {
		m.Close()
		return m, tea.Quit
	}

	switch m.mode {
	case ModeCommand:
		return m.handleCommandMode(msg)
	case ModeNewTask:
		return m.handleNewTaskMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.rows[m.column] = max(m.rows[m.column]-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		n := len(m.board.Columns[m.column].Tasks)
		m.rows[m.column] = clamp(m.rows[m.column]+1, 0, n-1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.column = max(m.column-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.column = min(m.column+1, len(m.board.Columns)-1)
		return m, nil

	case key.Matches(msg, m.keys.MoveLeft):
		task := m.SelectedTask()
		if task == nil || task.Status.Prev() == task.Status {
			return m, nil
		}
		return m, m.moveTask(*task, task.Status.Prev())

	case key.Matches(msg, m.keys.MoveRight):
		task := m.SelectedTask()
		if task == nil || task.Status.Next() == task.Status {
			return m, nil
		}
		return m, m.moveTask(*task, task.Status.Next())

	case key.Matches(msg, m.keys.ProgressUp):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.setProgress(*task, min(task.Progress+progressStep, 100))

	case key.Matches(msg, m.keys.ProgressDown):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.setProgress(*task, max(task.Progress-progressStep, 0))

	case key.Matches(msg, m.keys.New):
		m.mode = ModeNewTask
		m.titleInput.Reset()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Command):
		m.mode = ModeCommand
		return m, m.commandInput.Focus()

	case key.Matches(msg, m.keys.ToggleSource):
		m.showAll = !m.showAll
		m.rebuildBoard()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		m.notice = ""
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.commandInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		text := m.commandInput.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.commandInput.Reset()
		return m, m.sendCommand(text)
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m *Model) handleNewTaskMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		m.titleInput.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			return m, nil
		}
		m.mode = ModeNormal
		m.titleInput.Blur()
		m.titleInput.Reset()
		return m, m.createTask(title, m.board.Columns[m.column].Status)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return m, tea.Quit
	}
	// Any other key closes help
	m.mode = ModeNormal
	return m, nil
}
