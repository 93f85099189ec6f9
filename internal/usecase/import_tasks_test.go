package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
)

const importList = `
- title: Draft agenda
  priority: P2
- title: Book room
  status: in progress
  progress: 30
  dueDate: "2026-10-20"
- title: Send invites
  source: Todoist
`

func TestImportTasks_Execute_FileOrder(t *testing.T) {
	s := newTestStore()
	uc := NewImportTasks(s, nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importList})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	for _, it := range out.Tasks {
		assert.NotEmpty(t, it.ID)
	}

	// The last entry in the file is the newest task.
	tasks := s.Snapshot().Tasks
	require.Len(t, tasks, 3)
	assert.Equal(t, "Send invites", tasks[0].Title)
	assert.Equal(t, domain.SourceTodoist, tasks[0].Source)
	assert.Equal(t, "Book room", tasks[1].Title)
	assert.Equal(t, domain.StatusInProgress, tasks[1].Status)
	assert.Equal(t, 30, tasks[1].Progress)
	assert.Equal(t, "2026-10-20", tasks[1].DueDate)
	assert.Equal(t, "Draft agenda", tasks[2].Title)
	assert.Equal(t, domain.PriorityP2, tasks[2].Priority)
	assert.Len(t, s.Snapshot().Activities, 3)
}

func TestImportTasks_Execute_TasksKey(t *testing.T) {
	s := newTestStore()
	uc := NewImportTasks(s, nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: "tasks:\n  - title: one\n  - title: two\n"})

	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
	assert.Equal(t, "two", s.Snapshot().Tasks[0].Title)
}

func TestImportTasks_Execute_DryRun(t *testing.T) {
	s := newTestStore()
	uc := NewImportTasks(s, nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importList, DryRun: true})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Empty(t, out.Tasks[0].ID)
	assert.Equal(t, domain.PriorityP3, out.Tasks[2].Task.Priority)
	assert.Empty(t, s.Snapshot().Tasks)
}

func TestImportTasks_Execute_InvalidEntryAddsNothing(t *testing.T) {
	s := newTestStore()
	uc := NewImportTasks(s, nil)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: "- title: ok\n- title: bad\n  priority: P7\n"})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Contains(t, err.Error(), "task 2")
	assert.Empty(t, s.Snapshot().Tasks)
}

func TestImportTasks_Execute_MalformedYAML(t *testing.T) {
	uc := NewImportTasks(newTestStore(), nil)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: "tasks: [unterminated"})

	assert.Error(t, err)
}
