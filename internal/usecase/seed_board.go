package usecase

import (
	"context"
	"fmt"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// Starter task added to an empty board.
const (
	SeedTaskTitle       = "Build Mission Control"
	SeedTaskDescription = "Initialize React app and build core features."
	SeedTaskProgress    = 10
)

// SeedBoardInput contains the parameters for seeding the board.
type SeedBoardInput struct{}

// SeedBoardOutput contains the result of seeding.
type SeedBoardOutput struct {
	TaskID string // ID of the starter task ("" if the board was not empty)
	Seeded bool
}

// SeedBoard adds the starter task when the task collection is empty.
type SeedBoard struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewSeedBoard creates a new SeedBoard use case.
func NewSeedBoard(store domain.StateStore, logger domain.Logger) *SeedBoard {
	return &SeedBoard{
		store:  store,
		logger: logger,
	}
}

// Execute seeds the board if it has no tasks.
func (uc *SeedBoard) Execute(_ context.Context, _ SeedBoardInput) (*SeedBoardOutput, error) {
	if len(uc.store.Snapshot().Tasks) > 0 {
		return &SeedBoardOutput{}, nil
	}

	id := uc.store.AddTask(domain.TaskInput{
		Title:       SeedTaskTitle,
		Description: SeedTaskDescription,
		Priority:    domain.PriorityP1,
		Status:      domain.StatusInProgress,
		Source:      domain.SourceInternal,
		Progress:    SeedTaskProgress,
	})

	if uc.logger != nil {
		uc.logger.Info("board", fmt.Sprintf("seeded starter task %s", id))
	}

	return &SeedBoardOutput{TaskID: id, Seeded: true}, nil
}
