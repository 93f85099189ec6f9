package usecase

import (
	"context"
	"fmt"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskRef string // Task ID or unique ID prefix
}

// ShowTaskOutput contains the task and everything linked to it.
type ShowTaskOutput struct {
	Deliverables []domain.Deliverable // Deliverables referencing the task
	Task         domain.Task
}

// ShowTask is the use case for displaying a single task.
type ShowTask struct {
	store domain.StateStore
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.StateStore) *ShowTask {
	return &ShowTask{
		store: store,
	}
}

// Execute returns the task and its deliverables.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	snap := uc.store.Snapshot()
	task, err := shared.ResolveTask(snap, in.TaskRef)
	if err != nil {
		return nil, fmt.Errorf("resolve task %q: %w", in.TaskRef, err)
	}

	var deliverables []domain.Deliverable
	for _, d := range snap.Deliverables {
		if d.TaskID == task.ID {
			deliverables = append(deliverables, d)
		}
	}

	return &ShowTaskOutput{Task: task, Deliverables: deliverables}, nil
}
