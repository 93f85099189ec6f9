// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase/shared"
)

// AddTaskInput contains the parameters for creating a task.
// Enum fields are raw user input; empty means the default.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Title       string // Task title (required)
	Description string // Description (optional)
	Priority    string // P1..P4 (default P3)
	Status      string // Board column (default Queue)
	Source      string // Todoist or Internal (default Internal)
	DueDate     string // YYYY-MM-DD (optional)
	Progress    int    // Initial progress (default 0)
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for creating a task.
type AddTask struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.StateStore, logger domain.Logger) *AddTask {
	return &AddTask{
		store:  store,
		logger: logger,
	}
}

// Execute validates the input and adds the task to the board.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	taskIn, err := in.toTaskInput()
	if err != nil {
		return nil, err
	}

	id := uc.store.AddTask(taskIn)
	task, ok := uc.store.Task(id)
	if !ok {
		return nil, fmt.Errorf("read created task %s: %w", id, domain.ErrTaskNotFound)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created %s: %q", id, task.Title))
	}

	return &AddTaskOutput{Task: task}, nil
}

// toTaskInput validates raw input and applies defaults.
func (in AddTaskInput) toTaskInput() (domain.TaskInput, error) {
	title, err := shared.RequireText(in.Title, domain.ErrEmptyTitle)
	if err != nil {
		return domain.TaskInput{}, err
	}

	out := domain.TaskInput{
		Title:       title,
		Description: in.Description,
		Priority:    domain.PriorityP3,
		Status:      domain.StatusQueue,
		Source:      domain.SourceInternal,
		DueDate:     in.DueDate,
		Progress:    in.Progress,
	}

	if in.Priority != "" {
		if out.Priority, err = domain.ParsePriority(in.Priority); err != nil {
			return domain.TaskInput{}, err
		}
	}
	if in.Status != "" {
		if out.Status, err = domain.ParseStatus(in.Status); err != nil {
			return domain.TaskInput{}, err
		}
	}
	if in.Source != "" {
		if out.Source, err = domain.ParseSource(in.Source); err != nil {
			return domain.TaskInput{}, err
		}
	}
	if in.DueDate != "" && !domain.ValidDueDate(in.DueDate) {
		return domain.TaskInput{}, domain.ErrInvalidDueDate
	}

	return out, nil
}
