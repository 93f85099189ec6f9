package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/store"
	"github.com/sanirudh17/mission-control/internal/testutil"
)

// newTestStore returns an in-memory store with deterministic ids and clock.
func newTestStore() *store.Store {
	return store.New(nil, &testutil.SequentialIDs{}, testutil.NewMockClock(), nil)
}

// newTestStoreWithRepo returns a store that writes through to repo.
func newTestStoreWithRepo(repo *testutil.MockSnapshotRepository) *store.Store {
	return storeWith(repo, testutil.NewMockClock())
}

func storeWith(repo domain.SnapshotRepository, clock domain.Clock) *store.Store {
	return store.New(repo, &testutil.SequentialIDs{}, clock, nil)
}

func TestAddTask_Execute_Defaults(t *testing.T) {
	s := newTestStore()
	uc := NewAddTask(s, nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "Write report"})

	require.NoError(t, err)
	assert.Equal(t, "Write report", out.Task.Title)
	assert.Equal(t, domain.PriorityP3, out.Task.Priority)
	assert.Equal(t, domain.StatusQueue, out.Task.Status)
	assert.Equal(t, domain.SourceInternal, out.Task.Source)
	assert.Equal(t, 0, out.Task.Progress)

	snap := s.Snapshot()
	require.Len(t, snap.Tasks, 1)
	require.Len(t, snap.Activities, 1)
	assert.Equal(t, "New task: Write report", snap.Activities[0].Text)
}

func TestAddTask_Execute_AllFields(t *testing.T) {
	s := newTestStore()
	logger := &testutil.RecordingLogger{}
	uc := NewAddTask(s, logger)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		Title:       "Sync inbox",
		Description: "Pull from Todoist",
		Priority:    "p1",
		Status:      "in_progress",
		Source:      "todoist",
		DueDate:     "2026-11-01",
		Progress:    40,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityP1, out.Task.Priority)
	assert.Equal(t, domain.StatusInProgress, out.Task.Status)
	assert.Equal(t, domain.SourceTodoist, out.Task.Source)
	assert.Equal(t, "2026-11-01", out.Task.DueDate)
	assert.Equal(t, 40, out.Task.Progress)
	assert.Equal(t, "Pull from Todoist", out.Task.Description)
	assert.True(t, logger.HasLevel("INFO"))
}

func TestAddTask_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		in      AddTaskInput
	}{
		{name: "empty title", in: AddTaskInput{Title: "  "}, wantErr: domain.ErrEmptyTitle},
		{name: "bad priority", in: AddTaskInput{Title: "x", Priority: "P9"}, wantErr: domain.ErrInvalidPriority},
		{name: "bad status", in: AddTaskInput{Title: "x", Status: "archived"}, wantErr: domain.ErrInvalidStatus},
		{name: "bad source", in: AddTaskInput{Title: "x", Source: "jira"}, wantErr: domain.ErrInvalidSource},
		{name: "bad due date", in: AddTaskInput{Title: "x", DueDate: "11/01/2026"}, wantErr: domain.ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			uc := NewAddTask(s, nil)

			_, err := uc.Execute(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, s.Snapshot().Tasks)
			assert.Empty(t, s.Snapshot().Activities)
		})
	}
}
