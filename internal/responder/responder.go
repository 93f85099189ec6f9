// Package responder simulates the OpenClaw side of the chat panel.
//
// Every user message is acknowledged after a fixed delay by appending a
// reply through the store's AddMessage command.
package responder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// MessageAppender is the slice of the store the responder writes to.
type MessageAppender interface {
	AddMessage(text string, sender domain.Sender)
}

// Responder schedules delayed acknowledgements.
// Fields are ordered to minimize memory padding.
type Responder struct {
	target MessageAppender
	logger domain.Logger
	done   chan struct{}
	prefix string
	wg     sync.WaitGroup
	delay  time.Duration
	mu     sync.Mutex // guards closed and wg.Add against Close
	closed bool
}

// New creates a Responder that replies to target after delay.
func New(target MessageAppender, delay time.Duration, prefix string, logger domain.Logger) *Responder {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Responder{
		target: target,
		delay:  delay,
		prefix: prefix,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Reply returns the acknowledgement text for a user message.
func (r *Responder) Reply(text string) string {
	return r.prefix + text
}

// Respond schedules one acknowledgement for text. The reply is dropped if ctx
// is cancelled or the responder is closed before the delay elapses.
func (r *Responder) Respond(ctx context.Context, text string) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.logger.Debug("responder", "closed, reply not scheduled")
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	reply := r.Reply(text)
	go func() {
		defer r.wg.Done()

		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			r.target.AddMessage(reply, domain.SenderOpenClaw)
			r.logger.Debug("responder", fmt.Sprintf("replied after %s", r.delay))
		case <-ctx.Done():
			r.logger.Debug("responder", fmt.Sprintf("reply cancelled: %v", ctx.Err()))
		case <-r.done:
			r.logger.Debug("responder", "reply dropped on close")
		}
	}()
}

// Wait blocks until every scheduled reply has fired or been cancelled.
func (r *Responder) Wait() {
	r.wg.Wait()
}

// Close cancels pending replies and waits for them to finish.
func (r *Responder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.done)
	}
	r.mu.Unlock()
	r.wg.Wait()
}
