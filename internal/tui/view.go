package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/sanirudh17/mission-control/internal/domain"
)

const (
	minSidebarWidth = 32
	progressWidth   = 10
	timeFormat      = "15:04:05"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewBoard(), m.viewSidebar()))
	b.WriteString("\n")
	if m.mode == ModeNewTask {
		b.WriteString(m.viewTitleInput())
		b.WriteString("\n")
	}
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

func (m *Model) sidebarWidth() int {
	return max(m.width/3, minSidebarWidth)
}

func (m *Model) boardWidth() int {
	return max(m.width-m.sidebarWidth()-2, 30)
}

// bodyHeight is the height available to the board and sidebar.
func (m *Model) bodyHeight() int {
	return max(m.height-6, 8)
}

func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("OpenClaw Work Queue")
	info := fmt.Sprintf(" (%d active tasks)", m.board.Active)
	source := "all sources"
	if s := m.activeSource(); s != "" {
		source = string(s)
	}
	return m.styles.Header.Render(title + m.styles.HeaderInfo.Render(info+" · "+source))
}

func (m *Model) viewBoard() string {
	colWidth := m.boardWidth() / len(m.board.Columns)
	cols := make([]string, 0, len(m.board.Columns))
	for i, col := range m.board.Columns {
		style := m.styles.Column
		if i == m.column {
			style = m.styles.ColumnFocused
		}
		// Width includes padding but not the border
		inner := colWidth - 4
		heading := m.styles.ColumnTitle.Foreground(StatusColor(col.Status)).
			Render(fmt.Sprintf("%s (%d)", col.Status.Display(), len(col.Tasks)))

		var b strings.Builder
		b.WriteString(heading)
		for j, t := range col.Tasks {
			b.WriteString("\n")
			b.WriteString(m.viewCard(t, inner, i == m.column && j == m.rows[i]))
		}
		cols = append(cols, style.Width(colWidth-2).Height(m.bodyHeight()).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) viewCard(t domain.Task, width int, selected bool) string {
	width = max(width, 8)
	style := m.styles.Card
	if selected {
		style = m.styles.CardSelected
	}

	badge := PriorityStyle(t.Priority).Render(string(t.Priority))
	lines := []string{
		badge + " " + truncate.StringWithTail(t.Title, uint(max(width-4, 1)), "…"),
	}
	if t.Description != "" {
		lines = append(lines, m.styles.CardDesc.Render(truncate.StringWithTail(t.Description, uint(max(width-1, 1)), "…")))
	}
	if t.Status == domain.StatusInProgress {
		lines = append(lines, m.progressBar(t.Progress))
	}
	meta := string(t.Source)
	if t.DueDate != "" {
		meta += " · due " + t.DueDate
	}
	lines = append(lines, m.styles.CardDesc.Render(meta))

	return style.Render(strings.Join(lines, "\n"))
}

// progressBar renders progress clamped to 0-100 for display only.
func (m *Model) progressBar(progress int) string {
	p := clamp(progress, 0, 100)
	filled := p * progressWidth / 100
	return m.styles.ProgressFilled.Render(strings.Repeat("█", filled)) +
		m.styles.ProgressEmpty.Render(strings.Repeat("░", progressWidth-filled)) +
		fmt.Sprintf(" %d%%", progress)
}

func (m *Model) viewSidebar() string {
	width := m.sidebarWidth()
	inner := width - 4
	total := m.bodyHeight()
	feedHeight := total / 2
	chatHeight := total - feedHeight - 2

	feed := m.viewActivities(inner, feedHeight-1)
	chat := m.viewMessages(inner, chatHeight-3)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Panel.Width(width-2).Height(feedHeight).Render(feed),
		m.styles.Panel.Width(width-2).Height(chatHeight).Render(chat),
	)
}

// viewActivities renders the newest activities that fit.
func (m *Model) viewActivities(width, lines int) string {
	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("Activity Stream"))
	if len(m.snap.Activities) == 0 {
		b.WriteString("\n" + m.styles.Timestamp.Render("No activity yet"))
		return b.String()
	}
	for i, a := range m.snap.Activities {
		if i >= lines {
			break
		}
		ts := m.styles.Timestamp.Render(a.Timestamp.Local().Format(timeFormat))
		text := truncate.StringWithTail(a.Text, uint(max(width-len(timeFormat)-1, 1)), "…")
		b.WriteString("\n" + ts + " " + text)
	}
	return b.String()
}

// viewMessages renders the conversation tail above the command input.
func (m *Model) viewMessages(width, lines int) string {
	var rendered []string
	for _, msg := range m.snap.Messages {
		style := m.styles.ClawMsg
		if msg.Sender == domain.SenderUser {
			style = m.styles.UserMsg
		}
		text := wordwrap.String(msg.Text, max(width, 1))
		rendered = append(rendered, strings.Split(style.Width(width).Render(text), "\n")...)
	}
	if len(rendered) > lines {
		rendered = rendered[len(rendered)-max(lines, 0):]
	}

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("Command Center"))
	for _, line := range rendered {
		b.WriteString("\n" + line)
	}
	b.WriteString("\n")
	prompt := m.styles.InputPrompt.Render("> ")
	if m.mode == ModeCommand {
		b.WriteString(prompt + m.commandInput.View())
	} else {
		b.WriteString(m.styles.Timestamp.Render(prompt + "press : to type"))
	}
	return b.String()
}

func (m *Model) viewTitleInput() string {
	status := m.board.Columns[m.column].Status.Display()
	return m.styles.InputPrompt.Render("New task in "+status+": ") + m.titleInput.View()
}

func (m *Model) viewFooter() string {
	switch {
	case m.err != nil:
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	case m.notice != "":
		return m.styles.Notice.Render(m.notice)
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("Press any key to close"))
	return b.String()
}
