// Package gitstore keeps the snapshot record in a git repository.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"gopkg.in/yaml.v3"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/infra/crypto"
)

// Ensure Store implements domain.SnapshotRepository.
var (
	_ domain.SnapshotRepository = (*Store)(nil)
	_ domain.SnapshotHistory    = (*Store)(nil)
)

// Store implements domain.SnapshotRepository using git objects.
//
// Data structure:
//
//	refs/<namespace>/snapshot → commit
//	  tree
//	    snapshot.yaml → blob (persisted record, optionally encrypted)
//
// Every save is a new commit whose parent is the previous snapshot,
// so the ref's log doubles as a history of the board.
type Store struct {
	repo      *git.Repository
	encryptor *crypto.Encryptor
	namespace string
	mu        sync.Mutex
}

const (
	snapshotFile = "snapshot.yaml"
	authorName   = "mission-control"
	authorEmail  = "mission-control@localhost"
)

// Open opens the bare repository at path, creating it if needed.
func Open(path, namespace string) (*Store, error) {
	return OpenWithEncryption(path, namespace, nil)
}

// OpenWithEncryption is Open with snapshot blobs sealed by encryptor.
func OpenWithEncryption(path, namespace string, encryptor *crypto.Encryptor) (*Store, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(path, true)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace, encryptor), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string, encryptor *crypto.Encryptor) *Store {
	return &Store{
		repo:      repo,
		namespace: namespace,
		encryptor: encryptor,
	}
}

// snapshotRef returns the ref name holding the latest snapshot commit.
func (s *Store) snapshotRef() plumbing.ReferenceName {
	return plumbing.ReferenceName("refs/" + s.namespace + "/snapshot")
}

// Load returns the latest snapshot, or nil if none has been saved.
func (s *Store) Load() (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, err := s.repo.Reference(s.snapshotRef(), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot ref: %w", err)
	}

	return s.loadCommit(ref.Hash())
}

// LoadRevision returns the snapshot saved in the given commit.
func (s *Store) LoadRevision(hash string) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCommit(plumbing.NewHash(hash))
}

func (s *Store) loadCommit(hash plumbing.Hash) (*domain.Snapshot, error) {
	commit, err := s.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get snapshot commit: %w", err)
	}

	file, err := commit.File(snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("get snapshot file: %w", err)
	}

	data, err := s.readBlob(&file.Blob)
	if err != nil {
		return nil, err
	}

	var record domain.PersistedRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snap := record.State.Clone()
	return &snap, nil
}

// Save commits the snapshot on top of the previous one.
func (s *Store) Save(snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(domain.PersistedRecord{
		State:   snapshot.Clone(),
		Version: domain.SnapshotVersion,
	})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	blobHash, err := s.writeBlob(data)
	if err != nil {
		return err
	}

	treeHash, err := s.writeTree(blobHash)
	if err != nil {
		return err
	}

	var parents []plumbing.Hash
	if ref, err := s.repo.Reference(s.snapshotRef(), true); err == nil {
		parents = append(parents, ref.Hash())
	} else if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return fmt.Errorf("get snapshot ref: %w", err)
	}

	sig := object.Signature{Name: authorName, Email: authorEmail, When: time.Now()}
	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      commitMessage(snapshot),
		TreeHash:     treeHash,
		ParentHashes: parents,
	}

	obj := s.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return fmt.Errorf("encode commit: %w", err)
	}
	commitHash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return fmt.Errorf("store commit: %w", err)
	}

	ref := plumbing.NewHashReference(s.snapshotRef(), commitHash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set snapshot ref: %w", err)
	}

	return nil
}

// History returns up to limit saved revisions, newest first. limit <= 0 means all.
func (s *Store) History(limit int) ([]domain.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, err := s.repo.Reference(s.snapshotRef(), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot ref: %w", err)
	}

	var revs []domain.Revision
	hash := ref.Hash()
	for {
		commit, err := s.repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("get snapshot commit: %w", err)
		}
		revs = append(revs, domain.Revision{
			Hash:    commit.Hash.String(),
			When:    commit.Committer.When,
			Message: commit.Message,
		})
		if (limit > 0 && len(revs) >= limit) || commit.NumParents() == 0 {
			break
		}
		hash = commit.ParentHashes[0]
	}
	return revs, nil
}

func commitMessage(snap domain.Snapshot) string {
	return fmt.Sprintf("snapshot: %d tasks, %d activities, %d deliverables, %d messages",
		len(snap.Tasks), len(snap.Activities), len(snap.Deliverables), len(snap.Messages))
}

func (s *Store) writeTree(blobHash plumbing.Hash) (plumbing.Hash, error) {
	tree := &object.Tree{
		Entries: []object.TreeEntry{
			{Name: snapshotFile, Mode: filemode.Regular, Hash: blobHash},
		},
	}
	obj := s.repo.Storer.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode tree: %w", err)
	}
	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store tree: %w", err)
	}
	return hash, nil
}

func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	// Encrypt if encryptor is configured
	blobData := data
	if s.encryptor != nil {
		encrypted, err := s.encryptor.Encrypt(data)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("encrypt data: %w", err)
		}
		blobData = encrypted
	}

	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(blobData)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(blobData); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

func (s *Store) readBlob(blob *object.Blob) ([]byte, error) {
	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}

	// Decrypt if encryptor is configured
	if s.encryptor != nil {
		decrypted, err := s.encryptor.Decrypt(data)
		if err != nil {
			return nil, fmt.Errorf("decrypt data: %w", err)
		}
		return decrypted, nil
	}

	return data, nil
}
