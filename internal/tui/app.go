package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase"
)

// progressStep is the progress change applied by the +/- keys.
const progressStep = 10

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	board     *usecase.ShowBoardOutput
	err       error
	updates   <-chan domain.Snapshot
	cancel    func()

	// State
	snap domain.Snapshot
	rows []int // Selected row per column

	// Components (structs with pointers)
	keys         KeyMap
	styles       Styles
	help         help.Model
	commandInput textinput.Model
	titleInput   textinput.Model

	notice string
	source domain.Source // Configured board source ("" = all)

	// Numeric state (smaller types last)
	mode    Mode
	column  int
	width   int
	height  int
	showAll bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ci := textinput.New()
	ci.Placeholder = "Send a command to OpenClaw..."
	ci.CharLimit = 500

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	var source domain.Source
	if c.AppConfig != nil {
		raw := c.AppConfig.Board.Source
		if raw != "" && !strings.EqualFold(raw, usecase.AllSourcesFilter) {
			// An unknown source shows every task instead of an empty board
			source, _ = domain.ParseSource(raw)
		}
	}

	m := &Model{
		container:    c,
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		help:         help.New(),
		commandInput: ci,
		titleInput:   ti,
		source:       source,
		mode:         ModeNormal,
		rows:         make([]int, len(domain.AllStatuses())),
	}
	m.setSnapshot(c.Store.Snapshot())
	return m
}

// Init subscribes to the store and seeds an empty board.
func (m *Model) Init() tea.Cmd {
	m.updates, m.cancel = m.container.Store.Subscribe()
	if m.container.AppConfig != nil && m.container.AppConfig.Board.Seed {
		return tea.Batch(m.waitForSnapshot(), m.seedBoard())
	}
	return m.waitForSnapshot()
}

// Close ends the store subscription.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// waitForSnapshot returns a command that blocks until the store commits.
func (m *Model) waitForSnapshot() tea.Cmd {
	updates := m.updates
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return MsgSubscriptionClosed{}
		}
		return MsgSnapshot{Snapshot: snap}
	}
}

// activeSource returns the source filter currently applied to the board.
func (m *Model) activeSource() domain.Source {
	if m.showAll {
		return ""
	}
	return m.source
}

// setSnapshot replaces the displayed state and clamps the cursor.
func (m *Model) setSnapshot(snap domain.Snapshot) {
	m.snap = snap
	m.rebuildBoard()
}

func (m *Model) rebuildBoard() {
	m.board = usecase.BuildBoard(m.snap.Tasks, m.activeSource())
	for i, col := range m.board.Columns {
		m.rows[i] = clamp(m.rows[i], 0, len(col.Tasks)-1)
	}
	m.column = clamp(m.column, 0, len(m.board.Columns)-1)
}

// SelectedTask returns the task under the cursor, or nil if the column is empty.
func (m *Model) SelectedTask() *domain.Task {
	if m.board == nil || m.column >= len(m.board.Columns) {
		return nil
	}
	tasks := m.board.Columns[m.column].Tasks
	row := m.rows[m.column]
	if row < 0 || row >= len(tasks) {
		return nil
	}
	t := tasks[row]
	return &t
}

// seedBoard returns a command that adds the starter task to an empty board.
func (m *Model) seedBoard() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SeedBoardUseCase().Execute(context.Background(), usecase.SeedBoardInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Seeded {
			return nil
		}
		return MsgNotice{Text: "Added starter task"}
	}
}

// moveTask returns a command that moves a task to another column.
func (m *Model) moveTask(task domain.Task, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.MoveTaskUseCase().Execute(context.Background(), usecase.MoveTaskInput{
			TaskID: task.ID,
			Status: status,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgNotice{Text: fmt.Sprintf("Moved %q to %s", task.Title, status.Display())}
	}
}

// setProgress returns a command that changes the progress of a task.
func (m *Model) setProgress(task domain.Task, progress int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.EditTaskUseCase().Execute(context.Background(), usecase.EditTaskInput{
			TaskRef:  task.ID,
			Progress: &progress,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return nil
	}
}

// createTask returns a command that creates a task in the focused column.
func (m *Model) createTask(title string, status domain.Status) tea.Cmd {
	source := m.activeSource()
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Title:  title,
			Status: string(status),
			Source: string(source),
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgNotice{Text: "Created " + out.Task.Title}
	}
}

// sendCommand returns a command that sends a chat message to OpenClaw.
func (m *Model) sendCommand(text string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.SendMessageUseCase().Execute(context.Background(), usecase.SendMessageInput{Text: text}); err != nil {
			return MsgError{Err: err}
		}
		return nil
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
