package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ListActivitiesInput contains the parameters for reading the activity feed.
type ListActivitiesInput struct {
	Type  string // Filter by type (empty = all)
	Limit int    // Maximum entries (0 = all)
}

// ListActivitiesOutput contains activity entries, newest first.
type ListActivitiesOutput struct {
	Activities []domain.Activity
}

// ListActivities is the use case for reading the activity feed.
type ListActivities struct {
	store domain.StateStore
}

// NewListActivities creates a new ListActivities use case.
func NewListActivities(store domain.StateStore) *ListActivities {
	return &ListActivities{
		store: store,
	}
}

// Execute returns the filtered feed.
func (uc *ListActivities) Execute(_ context.Context, in ListActivitiesInput) (*ListActivitiesOutput, error) {
	var typ domain.ActivityType
	if in.Type != "" {
		var err error
		if typ, err = domain.ParseActivityType(in.Type); err != nil {
			return nil, err
		}
	}

	activities := []domain.Activity{}
	for _, a := range uc.store.Snapshot().Activities {
		if typ != "" && a.Type != typ {
			continue
		}
		activities = append(activities, a)
		if in.Limit > 0 && len(activities) == in.Limit {
			break
		}
	}

	return &ListActivitiesOutput{Activities: activities}, nil
}
