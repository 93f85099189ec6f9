package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// mockResponder records Respond calls.
type mockResponder struct {
	texts []string
	mu    sync.Mutex
}

func (m *mockResponder) Respond(_ context.Context, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, text)
}

func TestSendMessage_Execute(t *testing.T) {
	s := newTestStore()
	responder := &mockResponder{}
	uc := NewSendMessage(s, responder)

	out, err := uc.Execute(context.Background(), SendMessageInput{Text: "status report"})

	require.NoError(t, err)
	assert.True(t, out.Replying)
	msgs := s.Snapshot().Messages
	require.Len(t, msgs, 1)
	assert.Equal(t, "status report", msgs[0].Text)
	assert.Equal(t, domain.SenderUser, msgs[0].Sender)
	assert.Equal(t, []string{"status report"}, responder.texts)
}

func TestSendMessage_Execute_NoResponder(t *testing.T) {
	s := newTestStore()
	uc := NewSendMessage(s, nil)

	out, err := uc.Execute(context.Background(), SendMessageInput{Text: "hi"})

	require.NoError(t, err)
	assert.False(t, out.Replying)
	assert.Len(t, s.Snapshot().Messages, 1)
}

func TestSendMessage_Execute_Blank(t *testing.T) {
	s := newTestStore()
	responder := &mockResponder{}
	uc := NewSendMessage(s, responder)

	_, err := uc.Execute(context.Background(), SendMessageInput{Text: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Empty(t, s.Snapshot().Messages)
	assert.Empty(t, responder.texts)
}

func TestListMessages_Execute(t *testing.T) {
	s := newTestStore()
	s.AddMessage("one", domain.SenderUser)
	s.AddMessage("two", domain.SenderOpenClaw)
	s.AddMessage("three", domain.SenderUser)
	uc := NewListMessages(s)

	all, err := uc.Execute(context.Background(), ListMessagesInput{})
	require.NoError(t, err)
	require.Len(t, all.Messages, 3)
	assert.Equal(t, "one", all.Messages[0].Text)

	recent, err := uc.Execute(context.Background(), ListMessagesInput{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recent.Messages, 2)
	assert.Equal(t, "two", recent.Messages[0].Text)
	assert.Equal(t, "three", recent.Messages[1].Text)
}
