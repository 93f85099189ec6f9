package usecase

import (
	"context"
	"fmt"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except TaskRef are optional. Only non-nil fields are updated.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title       *string // New title
	Description *string // New description
	Priority    *string // New priority (P1..P4)
	Status      *string // New board column
	Source      *string // New source
	DueDate     *string // New due date (YYYY-MM-DD, empty clears)
	Progress    *int    // New progress, not range checked
	TaskRef     string  // Task ID or unique ID prefix (required)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task  domain.Task // The task after the update
	Moved bool        // True if the status change derived an activity entry
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	store domain.StateStore
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.StateStore) *EditTask {
	return &EditTask{
		store: store,
	}
}

// Execute edits a task with the given input.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	upd, err := in.toUpdate()
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	task, err := shared.ResolveTask(uc.store.Snapshot(), in.TaskRef)
	if err != nil {
		return nil, fmt.Errorf("resolve task %q: %w", in.TaskRef, err)
	}

	moved := domain.StatusChanged(task, upd)
	uc.store.UpdateTask(task.ID, upd)

	updated, ok := uc.store.Task(task.ID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &EditTaskOutput{Task: updated, Moved: moved}, nil
}

func (in EditTaskInput) toUpdate() (domain.TaskUpdate, error) {
	var upd domain.TaskUpdate

	if in.Title != nil {
		title, err := shared.RequireText(*in.Title, domain.ErrEmptyTitle)
		if err != nil {
			return upd, err
		}
		upd.Title = &title
	}
	upd.Description = in.Description
	upd.Progress = in.Progress

	if in.Priority != nil {
		p, err := domain.ParsePriority(*in.Priority)
		if err != nil {
			return upd, err
		}
		upd.Priority = &p
	}
	if in.Status != nil {
		s, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return upd, err
		}
		upd.Status = &s
	}
	if in.Source != nil {
		s, err := domain.ParseSource(*in.Source)
		if err != nil {
			return upd, err
		}
		upd.Source = &s
	}
	if in.DueDate != nil {
		if *in.DueDate != "" && !domain.ValidDueDate(*in.DueDate) {
			return upd, domain.ErrInvalidDueDate
		}
		upd.DueDate = in.DueDate
	}

	return upd, nil
}
