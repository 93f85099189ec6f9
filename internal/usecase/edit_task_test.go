package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestEditTask_Execute_StatusChangeDerivesActivity(t *testing.T) {
	s := newTestStore()
	id := s.AddTask(domain.TaskInput{Title: "Ship", Status: domain.StatusQueue})
	uc := NewEditTask(s)

	out, err := uc.Execute(context.Background(), EditTaskInput{
		TaskRef: id,
		Title:   ptr("Ship it"),
		Status:  ptr("completed"),
	})

	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.Equal(t, "Ship it", out.Task.Title)
	assert.Equal(t, domain.StatusCompleted, out.Task.Status)

	// The derived activity names the task by its title before the merge.
	acts := s.Snapshot().Activities
	require.Len(t, acts, 2)
	assert.Equal(t, `Task "Ship" moved to Completed`, acts[0].Text)
}

func TestEditTask_Execute_ProgressIsNotRangeChecked(t *testing.T) {
	s := newTestStore()
	id := s.AddTask(domain.TaskInput{Title: "Ship"})
	uc := NewEditTask(s)

	out, err := uc.Execute(context.Background(), EditTaskInput{TaskRef: id, Progress: ptr(150)})

	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.Equal(t, 150, out.Task.Progress)
	assert.Len(t, s.Snapshot().Activities, 1)
}

func TestEditTask_Execute_ByPrefix(t *testing.T) {
	s := newTestStore()
	s.AddTask(domain.TaskInput{Title: "first"}) // id-1
	uc := NewEditTask(s)

	out, err := uc.Execute(context.Background(), EditTaskInput{TaskRef: "id", Priority: ptr("P2")})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityP2, out.Task.Priority)
}

func TestEditTask_Execute_ClearDueDate(t *testing.T) {
	s := newTestStore()
	id := s.AddTask(domain.TaskInput{Title: "Ship", DueDate: "2026-12-01"})
	uc := NewEditTask(s)

	out, err := uc.Execute(context.Background(), EditTaskInput{TaskRef: id, DueDate: ptr("")})

	require.NoError(t, err)
	assert.Empty(t, out.Task.DueDate)
}

func TestEditTask_Execute_Errors(t *testing.T) {
	s := newTestStore()
	id := s.AddTask(domain.TaskInput{Title: "Ship"})
	uc := NewEditTask(s)

	tests := []struct {
		wantErr error
		name    string
		in      EditTaskInput
	}{
		{name: "no fields", in: EditTaskInput{TaskRef: id}, wantErr: domain.ErrNoFieldsToUpdate},
		{name: "unknown task", in: EditTaskInput{TaskRef: "missing", Progress: ptr(5)}, wantErr: domain.ErrTaskNotFound},
		{name: "empty title", in: EditTaskInput{TaskRef: id, Title: ptr(" ")}, wantErr: domain.ErrEmptyTitle},
		{name: "bad status", in: EditTaskInput{TaskRef: id, Status: ptr("later")}, wantErr: domain.ErrInvalidStatus},
		{name: "bad priority", in: EditTaskInput{TaskRef: id, Priority: ptr("P0")}, wantErr: domain.ErrInvalidPriority},
		{name: "bad source", in: EditTaskInput{TaskRef: id, Source: ptr("mail")}, wantErr: domain.ErrInvalidSource},
		{name: "bad due date", in: EditTaskInput{TaskRef: id, DueDate: ptr("tomorrow")}, wantErr: domain.ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.Snapshot()

			_, err := uc.Execute(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestEditTask_Execute_AmbiguousPrefix(t *testing.T) {
	s := newTestStore()
	s.AddTask(domain.TaskInput{Title: "a"}) // id-1
	s.AddTask(domain.TaskInput{Title: "b"}) // id-3
	uc := NewEditTask(s)

	_, err := uc.Execute(context.Background(), EditTaskInput{TaskRef: "id-", Progress: ptr(1)})

	assert.ErrorIs(t, err, domain.ErrAmbiguousID)
}
