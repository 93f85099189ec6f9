package domain

import "time"

// Deliverable is an artifact produced for the user.
// TaskID is a weak reference: nothing checks or cascades on it.
type Deliverable struct {
	CreatedAt time.Time       `json:"createdAt" yaml:"createdAt"`
	ID        string          `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	URL       string          `json:"url" yaml:"url"`
	Type      DeliverableType `json:"type" yaml:"type"`
	TaskID    string          `json:"taskId,omitempty" yaml:"taskId,omitempty"`
}

// DeliverableInput holds every deliverable field except the identifier and creation time.
type DeliverableInput struct {
	Name   string
	URL    string
	Type   DeliverableType
	TaskID string
}

// NewDeliverable builds a deliverable from the input with the given identity.
func (in DeliverableInput) NewDeliverable(id string, now time.Time) Deliverable {
	return Deliverable{
		ID:        id,
		CreatedAt: now,
		Name:      in.Name,
		URL:       in.URL,
		Type:      in.Type,
		TaskID:    in.TaskID,
	}
}

// DeliverableType is the kind of a deliverable.
type DeliverableType string

const (
	DeliverableImage DeliverableType = "image"
	DeliverableFile  DeliverableType = "file"
	DeliverableLink  DeliverableType = "link"
)

// AllDeliverableTypes returns all valid deliverable types.
func AllDeliverableTypes() []DeliverableType {
	return []DeliverableType{DeliverableImage, DeliverableFile, DeliverableLink}
}

// ParseDeliverableType parses a deliverable type case-insensitively.
func ParseDeliverableType(s string) (DeliverableType, error) {
	for _, t := range AllDeliverableTypes() {
		if equalFold(string(t), s) {
			return t, nil
		}
	}
	return "", ErrInvalidDeliverableType
}
