package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ListDeliverablesInput contains the parameters for listing deliverables.
type ListDeliverablesInput struct {
	TaskID string // Filter by related task (empty = all)
	Type   string // Filter by type (empty = all)
}

// ListDeliverablesOutput contains deliverables, newest first.
type ListDeliverablesOutput struct {
	Deliverables []domain.Deliverable
}

// ListDeliverables is the use case for listing deliverables.
type ListDeliverables struct {
	store domain.StateStore
}

// NewListDeliverables creates a new ListDeliverables use case.
func NewListDeliverables(store domain.StateStore) *ListDeliverables {
	return &ListDeliverables{
		store: store,
	}
}

// Execute returns the matching deliverables.
func (uc *ListDeliverables) Execute(_ context.Context, in ListDeliverablesInput) (*ListDeliverablesOutput, error) {
	var typ domain.DeliverableType
	if in.Type != "" {
		var err error
		if typ, err = domain.ParseDeliverableType(in.Type); err != nil {
			return nil, err
		}
	}

	out := []domain.Deliverable{}
	for _, d := range uc.store.Snapshot().Deliverables {
		if in.TaskID != "" && d.TaskID != in.TaskID {
			continue
		}
		if typ != "" && d.Type != typ {
			continue
		}
		out = append(out, d)
	}

	return &ListDeliverablesOutput{Deliverables: out}, nil
}
