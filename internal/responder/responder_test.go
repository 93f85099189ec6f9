package responder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/store"
	"github.com/sanirudh17/mission-control/internal/testutil"
)

type recordingAppender struct {
	texts   []string
	senders []domain.Sender
	mu      sync.Mutex
}

func (a *recordingAppender) AddMessage(text string, sender domain.Sender) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.texts = append(a.texts, text)
	a.senders = append(a.senders, sender)
}

func (a *recordingAppender) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.texts)
}

func TestRespond_AppendsAcknowledgement(t *testing.T) {
	target := &recordingAppender{}
	r := New(target, time.Millisecond, "Acknowledged: ", nil)

	r.Respond(context.Background(), "deploy the board")
	r.Wait()

	require.Len(t, target.texts, 1)
	assert.Equal(t, "Acknowledged: deploy the board", target.texts[0])
	assert.Equal(t, domain.SenderOpenClaw, target.senders[0])
}

func TestRespond_WaitsForDelay(t *testing.T) {
	target := &recordingAppender{}
	r := New(target, time.Hour, "ok: ", nil)
	defer r.Close()

	r.Respond(context.Background(), "hello")

	assert.Equal(t, 0, target.count())
}

func TestRespond_ContextCancelled(t *testing.T) {
	target := &recordingAppender{}
	logger := &testutil.RecordingLogger{}
	r := New(target, time.Hour, "ok: ", logger)

	ctx, cancel := context.WithCancel(context.Background())
	r.Respond(ctx, "hello")
	cancel()
	r.Wait()

	assert.Equal(t, 0, target.count())
	assert.True(t, logger.HasLevel("DEBUG"))
	assert.False(t, logger.HasLevel("WARN"))
}

func TestClose_DropsPendingReplies(t *testing.T) {
	target := &recordingAppender{}
	r := New(target, time.Hour, "ok: ", nil)

	r.Respond(context.Background(), "one")
	r.Respond(context.Background(), "two")
	r.Close()

	assert.Equal(t, 0, target.count())

	// Scheduling after close is a no-op.
	r.Respond(context.Background(), "three")
	r.Wait()
	assert.Equal(t, 0, target.count())
}

func TestClose_ConcurrentWithRespond(t *testing.T) {
	for i := 0; i < 200; i++ {
		target := &recordingAppender{}
		r := New(target, 0, "ok: ", nil)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Respond(context.Background(), "x")
		}()
		go func() {
			defer wg.Done()
			r.Close()
		}()
		wg.Wait()

		// Every reply scheduled before Close has settled by the time it returns.
		r.Close()
		settled := target.count()
		r.Respond(context.Background(), "late")
		r.Wait()
		assert.Equal(t, settled, target.count())
		assert.LessOrEqual(t, settled, 1)
	}
}

func TestRespond_ThroughStore(t *testing.T) {
	s := store.New(nil, &testutil.SequentialIDs{}, testutil.NewMockClock(), nil)
	r := New(s, time.Millisecond, "Acknowledged: ", nil)

	s.AddMessage("first", domain.SenderUser)
	r.Respond(context.Background(), "first")
	s.AddMessage("second", domain.SenderUser)
	r.Wait()

	msgs := s.Snapshot().Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, "Acknowledged: first", msgs[2].Text)
	assert.Equal(t, domain.SenderOpenClaw, msgs[2].Sender)
}

func TestReply(t *testing.T) {
	r := New(&recordingAppender{}, 0, "Acknowledged: ", nil)
	assert.Equal(t, "Acknowledged: x", r.Reply("x"))
}
