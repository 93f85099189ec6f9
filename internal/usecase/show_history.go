package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ErrHistoryUnsupported is returned when the storage backend keeps no history.
var ErrHistoryUnsupported = errors.New("storage backend keeps no snapshot history (use backend = \"git\")")

// ShowHistoryInput contains the parameters for listing saved snapshots.
type ShowHistoryInput struct {
	Revision string // If set, load this revision instead of listing
	Limit    int    // Maximum revisions (0 = all)
}

// ShowHistoryOutput contains revisions, newest first, or one loaded snapshot.
type ShowHistoryOutput struct {
	Snapshot  *domain.Snapshot
	Revisions []domain.Revision
}

// ShowHistory lists or loads past snapshots from a versioned repository.
type ShowHistory struct {
	history domain.SnapshotHistory
}

// NewShowHistory creates a new ShowHistory use case.
// history is nil when the configured backend is not versioned.
func NewShowHistory(history domain.SnapshotHistory) *ShowHistory {
	return &ShowHistory{
		history: history,
	}
}

// Execute lists revisions or loads the requested one.
func (uc *ShowHistory) Execute(_ context.Context, in ShowHistoryInput) (*ShowHistoryOutput, error) {
	if uc.history == nil {
		return nil, ErrHistoryUnsupported
	}

	if in.Revision != "" {
		snap, err := uc.history.LoadRevision(in.Revision)
		if err != nil {
			return nil, fmt.Errorf("load revision %s: %w", in.Revision, err)
		}
		return &ShowHistoryOutput{Snapshot: snap}, nil
	}

	revs, err := uc.history.History(in.Limit)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return &ShowHistoryOutput{Revisions: revs}, nil
}
