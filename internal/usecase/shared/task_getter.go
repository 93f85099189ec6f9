package shared

import (
	"strings"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ResolveTask finds a task by full identifier or by a unique identifier prefix.
// It returns domain.ErrTaskNotFound when nothing matches and
// domain.ErrAmbiguousID when a prefix matches several tasks.
func ResolveTask(snap domain.Snapshot, ref string) (domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if idx := snap.FindTask(ref); idx >= 0 {
		return snap.Tasks[idx], nil
	}

	var match *domain.Task
	for i := range snap.Tasks {
		if !strings.HasPrefix(snap.Tasks[i].ID, ref) {
			continue
		}
		if match != nil {
			return domain.Task{}, domain.ErrAmbiguousID
		}
		match = &snap.Tasks[i]
	}
	if match == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return *match, nil
}
