package gitstore

import (
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/infra/crypto"
	"github.com/sanirudh17/mission-control/internal/testutil"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func setupTestRepo(t *testing.T) *git.Repository {
	t.Helper()

	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)
	return repo
}

func TestStore_LoadWithoutSnapshot(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), domain.DefaultNamespace, nil)

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)

	revs, err := store.History(0)
	require.NoError(t, err)
	assert.Empty(t, revs)
}

func TestStore_RoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewWithRepo(repo, domain.DefaultNamespace, nil)
	want := testutil.SampleSnapshot()

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	ref, err := repo.Reference(plumbing.ReferenceName("refs/mission-control-storage/snapshot"), true)
	require.NoError(t, err)
	assert.False(t, ref.Hash().IsZero())
}

func TestStore_HistoryChainsCommits(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "mc", nil)

	first := domain.NewSnapshot()
	require.NoError(t, store.Save(first))

	second := testutil.SampleSnapshot()
	require.NoError(t, store.Save(second))

	revs, err := store.History(0)
	require.NoError(t, err)
	require.Len(t, revs, 2)
	assert.True(t, strings.HasPrefix(revs[0].Message, "snapshot: 2 tasks, 3 activities, 2 deliverables, 3 messages"))
	assert.True(t, strings.HasPrefix(revs[1].Message, "snapshot: 0 tasks"))

	limited, err := store.History(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	old, err := store.LoadRevision(revs[1].Hash)
	require.NoError(t, err)
	assert.Empty(t, old.Tasks)

	latest, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second, *latest)
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	repo := setupTestRepo(t)
	a := NewWithRepo(repo, "alpha", nil)
	b := NewWithRepo(repo, "beta", nil)

	require.NoError(t, a.Save(testutil.SampleSnapshot()))

	snap, err := b.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestStore_Encrypted(t *testing.T) {
	repo := setupTestRepo(t)
	enc, err := crypto.NewEncryptor(testKey, "mc")
	require.NoError(t, err)
	store := NewWithRepo(repo, "mc", enc)
	want := testutil.SampleSnapshot()

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	// Without the key the blob does not decode.
	_, err = NewWithRepo(repo, "mc", nil).Load()
	assert.Error(t, err)
}

func TestOpen_InitializesBareRepository(t *testing.T) {
	path := t.TempDir() + "/snapshots.git"

	store, err := Open(path, domain.DefaultNamespace)
	require.NoError(t, err)
	require.NoError(t, store.Save(testutil.SampleSnapshot()))

	reopened, err := Open(path, domain.DefaultNamespace)
	require.NoError(t, err)
	got, err := reopened.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testutil.SampleSnapshot(), *got)
}
