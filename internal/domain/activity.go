package domain

import "time"

// Activity is an entry in the activity feed. Activities are never modified.
type Activity struct {
	Timestamp time.Time    `json:"timestamp" yaml:"timestamp"`
	ID        string       `json:"id" yaml:"id"`
	Text      string       `json:"text" yaml:"text"`
	Type      ActivityType `json:"type" yaml:"type"`
}

// ActivityType classifies an activity entry.
type ActivityType string

const (
	ActivityTask        ActivityType = "Task"
	ActivityEmail       ActivityType = "Email"
	ActivitySystem      ActivityType = "System"
	ActivityDeliverable ActivityType = "Deliverable"
)

// AllActivityTypes returns all valid activity types.
func AllActivityTypes() []ActivityType {
	return []ActivityType{ActivityTask, ActivityEmail, ActivitySystem, ActivityDeliverable}
}

// ParseActivityType parses an activity type case-insensitively.
func ParseActivityType(s string) (ActivityType, error) {
	for _, t := range AllActivityTypes() {
		if equalFold(string(t), s) {
			return t, nil
		}
	}
	return "", ErrInvalidActivityType
}

// TaskCreatedText is the derived activity text for AddTask.
func TaskCreatedText(title string) string {
	return "New task: " + title
}

// TaskMovedText is the derived activity text for a status change.
// title must be the task title before the update was merged.
func TaskMovedText(title string, status Status) string {
	return `Task "` + title + `" moved to ` + string(status)
}

// DeliverableReadyText is the derived activity text for AddDeliverable.
func DeliverableReadyText(name string) string {
	return "Deliverable ready: " + name
}
