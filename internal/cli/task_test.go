package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
)

func TestTaskAdd_Defaults(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	out, err := execute(t, c, "task", "add", "Review", "numbers")

	require.NoError(t, err)
	assert.Equal(t, "Created task id-1: Review numbers\n", out)

	task, ok := c.Store.Task("id-1")
	require.True(t, ok)
	assert.Equal(t, domain.PriorityP3, task.Priority)
	assert.Equal(t, domain.StatusQueue, task.Status)
	assert.Equal(t, domain.SourceInternal, task.Source)
	assert.Equal(t, 0, task.Progress)

	acts := c.Store.Snapshot().Activities
	require.Len(t, acts, 1)
	assert.Equal(t, "New task: Review numbers", acts[0].Text)
	assert.Equal(t, domain.ActivityTask, acts[0].Type)
}

func TestTaskAdd_WithFlags(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	_, err := execute(t, c, "task", "add", "Fix login",
		"--priority", "p1", "--status", "in_progress", "--progress", "20",
		"--source", "todoist", "--due", "2026-10-30", "-d", "Users locked out")

	require.NoError(t, err)
	task, ok := c.Store.Task("id-1")
	require.True(t, ok)
	assert.Equal(t, domain.PriorityP1, task.Priority)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, domain.SourceTodoist, task.Source)
	assert.Equal(t, "2026-10-30", task.DueDate)
	assert.Equal(t, "Users locked out", task.Description)
	assert.Equal(t, 20, task.Progress)
}

func TestTaskAdd_InvalidPriority(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	_, err := execute(t, c, "task", "add", "x", "--priority", "P9")

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Empty(t, c.Store.Snapshot().Tasks)
}

func TestTaskEdit_OnlyChangedFlags(t *testing.T) {
	c := newTestContainer(t, nil, nil)
	_, err := execute(t, c, "task", "add", "Draft", "--priority", "P2", "--due", "2026-11-01")
	require.NoError(t, err)

	out, err := execute(t, c, "task", "edit", "id-1", "--progress", "60", "--due", "")

	require.NoError(t, err)
	assert.Equal(t, "Updated task id-1\n", out)
	task, _ := c.Store.Task("id-1")
	assert.Equal(t, 60, task.Progress)
	assert.Empty(t, task.DueDate)
	assert.Equal(t, domain.PriorityP2, task.Priority, "untouched fields are kept")
	assert.Len(t, c.Store.Snapshot().Activities, 1, "non-status edits derive no activity")
}

func TestTaskEdit_StatusChangeReportsMove(t *testing.T) {
	c := newTestContainer(t, nil, nil)
	_, err := execute(t, c, "task", "add", "Draft")
	require.NoError(t, err)

	out, err := execute(t, c, "task", "update", "id", "--status", "done")

	require.NoError(t, err)
	assert.Contains(t, out, "Moved to Done")
	acts := c.Store.Snapshot().Activities
	require.Len(t, acts, 2)
	assert.Equal(t, `Task "Draft" moved to Completed`, acts[0].Text)
}

func TestTaskEdit_UnknownTask(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	_, err := execute(t, c, "task", "edit", "nope", "--title", "x")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskMove(t *testing.T) {
	c := newTestContainer(t, nil, nil)
	_, err := execute(t, c, "task", "add", "Ship")
	require.NoError(t, err)

	out, err := execute(t, c, "task", "move", "id-1", "in-progress")
	require.NoError(t, err)
	assert.Equal(t, "Moved task id-1 to In Progress\n", out)

	out, err = execute(t, c, "task", "move", "id-1", "in_progress")
	require.NoError(t, err)
	assert.Equal(t, "Task id-1 is already in In Progress\n", out)
	assert.Len(t, c.Store.Snapshot().Activities, 2, "same-column move derives no activity")
}

func TestTaskMove_InvalidStatus(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	_, err := execute(t, c, "task", "move", "id-1", "blocked")

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestTaskList(t *testing.T) {
	c := newTestContainer(t, nil, nil)
	_, err := execute(t, c, "task", "add", "Old")
	require.NoError(t, err)
	_, err = execute(t, c, "task", "add", "New", "--source", "Todoist")
	require.NoError(t, err)

	out, err := execute(t, c, "task", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "New", "newest first")
	assert.Contains(t, lines[2], "Old")

	out, err = execute(t, c, "task", "ls", "--source", "internal")
	require.NoError(t, err)
	assert.Contains(t, out, "Old")
	assert.NotContains(t, out, "New")
}

func TestTaskList_Empty(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	out, err := execute(t, c, "task", "list")

	require.NoError(t, err)
	assert.Equal(t, "No tasks.\n", out)
}

func TestTaskShow_WithDeliverables(t *testing.T) {
	c := newTestContainer(t, nil, nil)
	_, err := execute(t, c, "task", "add", "Mockups", "-d", "Landing page")
	require.NoError(t, err)
	_, err = execute(t, c, "deliverable", "add", "Hero", "https://example.com/hero.png", "--type", "image", "--task", "id-1")
	require.NoError(t, err)

	out, err := execute(t, c, "task", "show", "id-1")

	require.NoError(t, err)
	assert.Contains(t, out, "# Mockups")
	assert.Contains(t, out, "Landing page")
	assert.Contains(t, out, "Status: Queue")
	assert.Contains(t, out, "Due: -")
	assert.Contains(t, out, "[image] Hero https://example.com/hero.png")
}

func TestTaskImport(t *testing.T) {
	c := newTestContainer(t, nil, nil)
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `- title: Draft agenda
  priority: P2
- title: Book room
  status: in_progress
  progress: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := execute(t, c, "task", "import", path, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would create 2 task(s)")
	assert.Empty(t, c.Store.Snapshot().Tasks)

	out, err = execute(t, c, "task", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created 2 task(s)")

	tasks := c.Store.Snapshot().Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "Book room", tasks[0].Title, "last entry is on top")
	assert.Equal(t, domain.StatusInProgress, tasks[0].Status)
}

func TestTaskImport_MissingFile(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	_, err := execute(t, c, "task", "import", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorContains(t, err, "read import file")
}

func TestBoard(t *testing.T) {
	c := newTestContainer(t, nil, nil)
	_, err := execute(t, c, "task", "add", "Internal work", "--status", "in_progress", "--progress", "40")
	require.NoError(t, err)
	_, err = execute(t, c, "task", "add", "Groceries", "--source", "Todoist")
	require.NoError(t, err)

	out, err := execute(t, c, "board")
	require.NoError(t, err)
	assert.Contains(t, out, "OpenClaw Work Queue (1 active tasks)")
	assert.Contains(t, out, "In Progress (1)")
	assert.Contains(t, out, "Internal work 40%")
	assert.NotContains(t, out, "Groceries", "configured source filter hides Todoist tasks")

	out, err = execute(t, c, "board", "--source", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "Queue (1)")
	assert.Contains(t, out, "Groceries")
}

func TestBoard_InvalidSource(t *testing.T) {
	c := newTestContainer(t, nil, nil)

	_, err := execute(t, c, "board", "--source", "Jira")

	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}
