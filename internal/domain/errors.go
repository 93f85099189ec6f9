package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrAmbiguousID            = errors.New("task id prefix matches more than one task")
	ErrEmptyTitle             = errors.New("title cannot be empty")
	ErrEmptyMessage           = errors.New("message cannot be empty")
	ErrEmptyName              = errors.New("name cannot be empty")
	ErrEmptyURL               = errors.New("url cannot be empty")
	ErrEmptyText              = errors.New("text cannot be empty")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
	ErrInvalidStatus          = errors.New("invalid status (want queue, in_progress or completed)")
	ErrInvalidPriority        = errors.New("invalid priority (want P1, P2, P3 or P4)")
	ErrInvalidSource          = errors.New("invalid source (want Todoist or Internal)")
	ErrInvalidActivityType    = errors.New("invalid activity type (want Task, Email, System or Deliverable)")
	ErrInvalidDeliverableType = errors.New("invalid deliverable type (want image, file or link)")
	ErrInvalidDueDate         = errors.New("invalid due date (want YYYY-MM-DD)")
	ErrInvalidBackend         = errors.New("invalid storage backend (want json, sqlite or git)")
	ErrInvalidNamespace       = errors.New("invalid storage namespace (want a single name usable as a file name and git ref)")
	ErrConfigExists           = errors.New("config file already exists")
)
