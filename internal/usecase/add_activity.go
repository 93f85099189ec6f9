package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase/shared"
)

// AddActivityInput contains the parameters for logging an activity.
type AddActivityInput struct {
	Text string // Activity text (required)
	Type string // Task, Email, System or Deliverable (default System)
}

// AddActivityOutput contains the result of logging an activity.
type AddActivityOutput struct {
	Type domain.ActivityType
}

// AddActivity is the use case for writing an entry to the activity feed.
type AddActivity struct {
	store domain.StateStore
}

// NewAddActivity creates a new AddActivity use case.
func NewAddActivity(store domain.StateStore) *AddActivity {
	return &AddActivity{
		store: store,
	}
}

// Execute validates the input and prepends the activity.
func (uc *AddActivity) Execute(_ context.Context, in AddActivityInput) (*AddActivityOutput, error) {
	text, err := shared.RequireText(in.Text, domain.ErrEmptyText)
	if err != nil {
		return nil, err
	}

	typ := domain.ActivitySystem
	if in.Type != "" {
		if typ, err = domain.ParseActivityType(in.Type); err != nil {
			return nil, err
		}
	}

	uc.store.AddActivity(text, typ)
	return &AddActivityOutput{Type: typ}, nil
}
