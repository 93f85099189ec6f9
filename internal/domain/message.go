package domain

import "time"

// Message is a chat entry in the command panel.
type Message struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Sender    Sender    `json:"sender" yaml:"sender"`
}

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser     Sender = "User"
	SenderOpenClaw Sender = "OpenClaw"
)
