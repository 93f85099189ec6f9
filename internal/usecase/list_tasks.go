package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status string // Filter by board column (empty = all)
	Source string // Filter by source (empty = all)
}

// ListTasksOutput contains the matching tasks, newest first.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	store domain.StateStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.StateStore) *ListTasks {
	return &ListTasks{
		store: store,
	}
}

// Execute lists tasks matching the given filters.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var (
		status domain.Status
		source domain.Source
		err    error
	)
	if in.Status != "" {
		if status, err = domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}
	if in.Source != "" {
		if source, err = domain.ParseSource(in.Source); err != nil {
			return nil, err
		}
	}

	tasks := []domain.Task{}
	for _, t := range uc.store.Snapshot().Tasks {
		if status != "" && t.Status != status {
			continue
		}
		if source != "" && t.Source != source {
			continue
		}
		tasks = append(tasks, t)
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
