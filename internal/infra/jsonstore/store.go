// Package jsonstore provides a JSON file-based implementation of SnapshotRepository.
package jsonstore

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sanirudh17/mission-control/internal/domain"
	"github.com/sanirudh17/mission-control/internal/infra/crypto"
)

// Ensure Store implements domain.SnapshotRepository.
var _ domain.SnapshotRepository = (*Store)(nil)

// Store keeps the snapshot record in <dir>/<namespace>.json.
type Store struct {
	encryptor *crypto.Encryptor
	path      string
	lockPath  string
}

// New creates a new Store for the given directory and namespace.
// The file does not need to exist; it will be created on first write.
func New(dir, namespace string) *Store {
	path := filepath.Join(dir, namespace+".json")
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// NewWithEncryption creates a Store whose file content is AES-256-GCM encrypted
// (base64 encoded on disk).
func NewWithEncryption(dir, namespace string, encryptor *crypto.Encryptor) *Store {
	s := New(dir, namespace)
	s.encryptor = encryptor
	return s
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot. Returns nil if the file does not exist yet.
func (s *Store) Load() (*domain.Snapshot, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	if s.encryptor != nil {
		raw, err := base64.StdEncoding.DecodeString(string(content))
		if err != nil {
			return nil, fmt.Errorf("decode snapshot file: %w", err)
		}
		content, err = s.encryptor.Decrypt(raw)
		if err != nil {
			return nil, fmt.Errorf("decrypt snapshot file: %w", err)
		}
	}

	var record domain.PersistedRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}

	snap := record.State.Clone()
	return &snap, nil
}

// Save writes the snapshot, replacing any previous one.
func (s *Store) Save(snapshot domain.Snapshot) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	content, err := json.MarshalIndent(domain.PersistedRecord{
		State:   snapshot.Clone(),
		Version: domain.SnapshotVersion,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if s.encryptor != nil {
		sealed, err := s.encryptor.Encrypt(content)
		if err != nil {
			return fmt.Errorf("encrypt snapshot: %w", err)
		}
		content = []byte(base64.StdEncoding.EncodeToString(sealed))
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
