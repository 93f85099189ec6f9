package tui

import "github.com/sanirudh17/mission-control/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgSnapshot carries the store state after a committed command.
type MsgSnapshot struct {
	Snapshot domain.Snapshot
}

func (MsgSnapshot) sealed() {}

// MsgSubscriptionClosed is sent when the store subscription ends.
type MsgSubscriptionClosed struct{}

func (MsgSubscriptionClosed) sealed() {}

// MsgError is sent when a use case fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgNotice is a transient status line message.
type MsgNotice struct {
	Text string
}

func (MsgNotice) sealed() {}
