package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/testutil"
)

func TestMoveTask_Execute(t *testing.T) {
	s := newTestStore()
	id := s.AddTask(domain.TaskInput{Title: "Deploy", Status: domain.StatusQueue})
	uc := NewMoveTask(s)

	out, err := uc.Execute(context.Background(), MoveTaskInput{TaskID: id, Status: domain.StatusInProgress})

	require.NoError(t, err)
	assert.True(t, out.Moved)
	snap := s.Snapshot()
	assert.Equal(t, domain.StatusInProgress, snap.Tasks[0].Status)
	assert.Equal(t, `Task "Deploy" moved to In Progress`, snap.Activities[0].Text)
}

func TestMoveTask_Execute_SameColumn(t *testing.T) {
	repo := &testutil.MockSnapshotRepository{}
	s := newTestStoreWithRepo(repo)
	id := s.AddTask(domain.TaskInput{Title: "Deploy", Status: domain.StatusQueue})
	uc := NewMoveTask(s)
	saves := repo.SaveCount()

	out, err := uc.Execute(context.Background(), MoveTaskInput{TaskID: id, Status: domain.StatusQueue})

	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.Len(t, s.Snapshot().Activities, 1)
	// The update is still issued and committed.
	assert.Equal(t, saves+1, repo.SaveCount())
}

func TestMoveTask_Execute_UnknownIDIsSilent(t *testing.T) {
	s := newTestStore()
	s.AddTask(domain.TaskInput{Title: "Deploy"})
	before := s.Snapshot()
	uc := NewMoveTask(s)

	out, err := uc.Execute(context.Background(), MoveTaskInput{TaskID: "gone", Status: domain.StatusCompleted})

	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.Equal(t, before, s.Snapshot())
}
