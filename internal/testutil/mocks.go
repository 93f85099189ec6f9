// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// MockClock is a test double for domain.Clock.
// Each call to Now advances the clock by Step.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
	mu      sync.Mutex
}

// NewMockClock returns a clock starting at a fixed UTC instant, ticking one second per call.
func NewMockClock() *MockClock {
	return &MockClock{
		NowTime: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
		Step:    time.Second,
	}
}

// Now returns the configured time and advances it.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return now
}

// SequentialIDs is a test double for domain.IDGenerator producing id-1, id-2, ...
type SequentialIDs struct {
	Prefix string
	n      int
	mu     sync.Mutex
}

// NewID returns the next identifier.
func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, g.n)
}

// MockSnapshotRepository is a test double for domain.SnapshotRepository.
// Fields are ordered to minimize memory padding.
type MockSnapshotRepository struct {
	Stored  *domain.Snapshot
	LoadErr error
	SaveErr error
	Saves   int
	mu      sync.Mutex
}

// Load returns the stored snapshot.
func (m *MockSnapshotRepository) Load() (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Stored == nil {
		return nil, nil
	}
	snap := m.Stored.Clone()
	return &snap, nil
}

// Save stores the snapshot unless SaveErr is set.
func (m *MockSnapshotRepository) Save(snapshot domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = &snapshot
	return nil
}

// SaveCount returns how many times Save was called.
func (m *MockSnapshotRepository) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Saves
}

// LogEntry is a line captured by RecordingLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// RecordingLogger is a domain.Logger that keeps every entry.
type RecordingLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (l *RecordingLogger) add(level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(category, msg string) { l.add("DEBUG", category, msg) }

// Info records an info entry.
func (l *RecordingLogger) Info(category, msg string) { l.add("INFO", category, msg) }

// Warn records a warning entry.
func (l *RecordingLogger) Warn(category, msg string) { l.add("WARN", category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(category, msg string) { l.add("ERROR", category, msg) }

// HasLevel reports whether any entry was logged at level.
func (l *RecordingLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}
