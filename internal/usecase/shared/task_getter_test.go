package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
)

func snapshotWithIDs(ids ...string) domain.Snapshot {
	snap := domain.NewSnapshot()
	for _, id := range ids {
		snap.Tasks = append(snap.Tasks, domain.Task{ID: id, Title: "task " + id})
	}
	return snap
}

func TestResolveTask_ExactID(t *testing.T) {
	snap := snapshotWithIDs("abc", "abcd")

	task, err := ResolveTask(snap, "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc", task.ID)
}

func TestResolveTask_UniquePrefix(t *testing.T) {
	snap := snapshotWithIDs("7f3a-1", "9b21-2")

	task, err := ResolveTask(snap, "9b")

	require.NoError(t, err)
	assert.Equal(t, "9b21-2", task.ID)
}

func TestResolveTask_Ambiguous(t *testing.T) {
	snap := snapshotWithIDs("7f3a-1", "7f3b-2")

	_, err := ResolveTask(snap, "7f3")

	assert.ErrorIs(t, err, domain.ErrAmbiguousID)
}

func TestResolveTask_NotFound(t *testing.T) {
	snap := snapshotWithIDs("7f3a-1")

	_, err := ResolveTask(snap, "zz")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = ResolveTask(snap, "  ")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
