// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a card on the mission control board.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`                         // Creation time (stamped by the store)
	ID          string    `json:"id" yaml:"id"`                                       // Opaque unique identifier
	Title       string    `json:"title" yaml:"title"`                                 // Title
	Description string    `json:"description,omitempty" yaml:"description,omitempty"` // Description (optional)
	Priority    Priority  `json:"priority" yaml:"priority"`                           // P1..P4
	Status      Status    `json:"status" yaml:"status"`                               // Board column
	Source      Source    `json:"source" yaml:"source"`                               // Where the task came from
	DueDate     string    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`         // YYYY-MM-DD (optional)
	Progress    int       `json:"progress" yaml:"progress"`                           // Nominally 0-100, not enforced
}

// TaskInput holds every task field except the identifier and creation time.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	Status      Status
	Source      Source
	DueDate     string
	Progress    int
}

// NewTask builds a task from the input with the given identity.
func (in TaskInput) NewTask(id string, now time.Time) Task {
	return Task{
		ID:          id,
		CreatedAt:   now,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		Source:      in.Source,
		DueDate:     in.DueDate,
		Progress:    in.Progress,
	}
}

// TaskUpdate is a partial set of task fields. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	Source      *Source
	DueDate     *string
	Progress    *int
}

// IsEmpty returns true if no field is set.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil &&
		u.Status == nil && u.Source == nil && u.DueDate == nil && u.Progress == nil
}

// Apply merges the update into the task field by field.
func (u TaskUpdate) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Source != nil {
		t.Source = *u.Source
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Progress != nil {
		t.Progress = *u.Progress
	}
}

// StatusChanged reports whether applying the update moves the task to another column.
// This is the only condition under which an update derives an activity entry.
func StatusChanged(prior Task, u TaskUpdate) bool {
	return u.Status != nil && *u.Status != prior.Status
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// AllPriorities returns all valid priorities, most urgent first.
func AllPriorities() []Priority {
	return []Priority{PriorityP1, PriorityP2, PriorityP3, PriorityP4}
}

// ParsePriority parses a priority, accepting lowercase input.
func ParsePriority(s string) (Priority, error) {
	for _, p := range AllPriorities() {
		if equalFold(string(p), s) {
			return p, nil
		}
	}
	return "", ErrInvalidPriority
}

// Source identifies where a task originated.
type Source string

const (
	SourceTodoist  Source = "Todoist"
	SourceInternal Source = "Internal"
)

// AllSources returns all valid sources.
func AllSources() []Source {
	return []Source{SourceTodoist, SourceInternal}
}

// ParseSource parses a source name case-insensitively.
func ParseSource(s string) (Source, error) {
	for _, src := range AllSources() {
		if equalFold(string(src), s) {
			return src, nil
		}
	}
	return "", ErrInvalidSource
}

// DueDateLayout is the layout of Task.DueDate.
const DueDateLayout = "2006-01-02"

// ValidDueDate returns true if s is empty or a YYYY-MM-DD date.
func ValidDueDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(DueDateLayout, s)
	return err == nil
}
