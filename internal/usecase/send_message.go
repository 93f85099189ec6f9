package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/usecase/shared"
)

// SendMessageInput contains the parameters for sending a chat message.
type SendMessageInput struct {
	Text string // Message text (required, sent untrimmed)
}

// SendMessageOutput contains the result of sending a message.
type SendMessageOutput struct {
	Replying bool // True if a responder was asked to answer
}

// SendMessage appends a user message and asks the responder to answer it.
type SendMessage struct {
	store     domain.StateStore
	responder domain.Responder
}

// NewSendMessage creates a new SendMessage use case.
// A nil responder leaves messages unanswered.
func NewSendMessage(store domain.StateStore, responder domain.Responder) *SendMessage {
	return &SendMessage{
		store:     store,
		responder: responder,
	}
}

// Execute sends the message.
func (uc *SendMessage) Execute(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	// Only the check trims; the message keeps its whitespace
	if _, err := shared.RequireText(in.Text, domain.ErrEmptyMessage); err != nil {
		return nil, err
	}

	uc.store.AddMessage(in.Text, domain.SenderUser)

	if uc.responder == nil {
		return &SendMessageOutput{}, nil
	}
	uc.responder.Respond(ctx, in.Text)
	return &SendMessageOutput{Replying: true}, nil
}
