package usecase

import (
	"context"
	"fmt"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase/shared"
)

// AddDeliverableInput contains the parameters for registering a deliverable.
type AddDeliverableInput struct {
	Name   string // Display name (required)
	URL    string // Location (required)
	Type   string // image, file or link (default link)
	TaskID string // Related task (optional, not checked)
}

// AddDeliverableOutput contains the result of registering a deliverable.
type AddDeliverableOutput struct {
	ID string
}

// AddDeliverable is the use case for registering a produced artifact.
type AddDeliverable struct {
	store  domain.StateStore
	logger domain.Logger
}

// NewAddDeliverable creates a new AddDeliverable use case.
func NewAddDeliverable(store domain.StateStore, logger domain.Logger) *AddDeliverable {
	return &AddDeliverable{
		store:  store,
		logger: logger,
	}
}

// Execute validates the input and adds the deliverable.
func (uc *AddDeliverable) Execute(_ context.Context, in AddDeliverableInput) (*AddDeliverableOutput, error) {
	name, err := shared.RequireText(in.Name, domain.ErrEmptyName)
	if err != nil {
		return nil, err
	}
	url, err := shared.RequireText(in.URL, domain.ErrEmptyURL)
	if err != nil {
		return nil, err
	}

	typ := domain.DeliverableLink
	if in.Type != "" {
		if typ, err = domain.ParseDeliverableType(in.Type); err != nil {
			return nil, err
		}
	}

	id := uc.store.AddDeliverable(domain.DeliverableInput{
		Name:   name,
		URL:    url,
		Type:   typ,
		TaskID: in.TaskID,
	})

	if uc.logger != nil {
		uc.logger.Info("deliverable", fmt.Sprintf("added %s: %q", id, name))
	}

	return &AddDeliverableOutput{ID: id}, nil
}
