package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// MoveTaskInput contains the parameters for moving a task to a board column.
type MoveTaskInput struct {
	TaskID string        // Exact task ID
	Status domain.Status // Target column
}

// MoveTaskOutput contains the result of a move.
type MoveTaskOutput struct {
	Moved bool // True if the task existed and changed column
}

// MoveTask drops a task into a board column.
// It issues exactly one status update. An unknown id is ignored the same way
// the store ignores it, and dropping a task on its own column is a no-op
// update that derives nothing.
type MoveTask struct {
	store domain.StateStore
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(store domain.StateStore) *MoveTask {
	return &MoveTask{
		store: store,
	}
}

// Execute moves the task.
func (uc *MoveTask) Execute(_ context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	status := in.Status
	upd := domain.TaskUpdate{Status: &status}

	moved := false
	if prior, ok := uc.store.Task(in.TaskID); ok {
		moved = domain.StatusChanged(prior, upd)
	}

	uc.store.UpdateTask(in.TaskID, upd)
	return &MoveTaskOutput{Moved: moved}, nil
}
