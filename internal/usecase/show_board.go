package usecase

import (
	"context"
	"strings"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// AllSourcesFilter disables the board's source filter.
const AllSourcesFilter = "all"

// ShowBoardInput contains the parameters for rendering the board.
type ShowBoardInput struct {
	Source string // Source filter (empty = configured default, "all" = no filter)
}

// BoardColumn is one column of the board.
type BoardColumn struct {
	Status domain.Status
	Tasks  []domain.Task // Newest first
}

// ShowBoardOutput contains the board columns in display order.
type ShowBoardOutput struct {
	Source  domain.Source // Applied filter ("" = all sources)
	Columns []BoardColumn // Queue, In Progress, Completed
	Active  int           // Number of in-progress tasks on the board
}

// ShowBoard groups tasks into the three board columns.
type ShowBoard struct {
	store         domain.StateStore
	defaultSource string
}

// NewShowBoard creates a new ShowBoard use case.
// defaultSource applies when the input leaves Source empty.
func NewShowBoard(store domain.StateStore, defaultSource string) *ShowBoard {
	return &ShowBoard{
		store:         store,
		defaultSource: defaultSource,
	}
}

// Execute builds the board from the current snapshot.
func (uc *ShowBoard) Execute(_ context.Context, in ShowBoardInput) (*ShowBoardOutput, error) {
	raw := in.Source
	if raw == "" {
		raw = uc.defaultSource
	}

	var source domain.Source
	if raw != "" && !strings.EqualFold(raw, AllSourcesFilter) {
		var err error
		if source, err = domain.ParseSource(raw); err != nil {
			return nil, err
		}
	}

	return BuildBoard(uc.store.Snapshot().Tasks, source), nil
}

// BuildBoard groups tasks by column, keeping only tasks from source.
// An empty source keeps every task.
func BuildBoard(tasks []domain.Task, source domain.Source) *ShowBoardOutput {
	out := &ShowBoardOutput{Source: source}
	for _, status := range domain.AllStatuses() {
		col := BoardColumn{Status: status, Tasks: []domain.Task{}}
		for _, t := range tasks {
			if t.Status != status {
				continue
			}
			if source != "" && t.Source != source {
				continue
			}
			col.Tasks = append(col.Tasks, t)
		}
		if status == domain.StatusInProgress {
			out.Active = len(col.Tasks)
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}
