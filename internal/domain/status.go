package domain

import "strings"

// Status is the board column a task sits in.
type Status string

const (
	StatusQueue      Status = "Queue"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// AllStatuses returns the board columns in display order.
func AllStatuses() []Status {
	return []Status{StatusQueue, StatusInProgress, StatusCompleted}
}

// Display returns the column heading for the status.
func (s Status) Display() string {
	if s == StatusCompleted {
		return "Done"
	}
	return string(s)
}

// Next returns the column to the right, or the same status at the last column.
func (s Status) Next() Status {
	statuses := AllStatuses()
	for i, st := range statuses {
		if st == s && i+1 < len(statuses) {
			return statuses[i+1]
		}
	}
	return s
}

// Prev returns the column to the left, or the same status at the first column.
func (s Status) Prev() Status {
	statuses := AllStatuses()
	for i, st := range statuses {
		if st == s && i > 0 {
			return statuses[i-1]
		}
	}
	return s
}

// ParseStatus parses a status. It accepts the stored form ("In Progress")
// as well as CLI-friendly spellings ("in_progress", "in-progress", "inprogress", "done").
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s))
	switch norm {
	case "queue", "todo":
		return StatusQueue, nil
	case "inprogress":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	return "", ErrInvalidStatus
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, strings.TrimSpace(b))
}
