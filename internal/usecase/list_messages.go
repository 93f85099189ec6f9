package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ListMessagesInput contains the parameters for reading the chat history.
type ListMessagesInput struct {
	Limit int // Most recent N messages (0 = all)
}

// ListMessagesOutput contains messages, oldest first.
type ListMessagesOutput struct {
	Messages []domain.Message
}

// ListMessages is the use case for reading the chat history.
type ListMessages struct {
	store domain.StateStore
}

// NewListMessages creates a new ListMessages use case.
func NewListMessages(store domain.StateStore) *ListMessages {
	return &ListMessages{
		store: store,
	}
}

// Execute returns the chat history in chronological order.
func (uc *ListMessages) Execute(_ context.Context, in ListMessagesInput) (*ListMessagesOutput, error) {
	msgs := uc.store.Snapshot().Messages
	if in.Limit > 0 && len(msgs) > in.Limit {
		msgs = msgs[len(msgs)-in.Limit:]
	}
	return &ListMessagesOutput{Messages: msgs}, nil
}
