package domain

import (
	"context"
	"time"
)

// SnapshotRepository persists the full store snapshot under one fixed key.
type SnapshotRepository interface {
	// Load returns the stored snapshot, or nil if none has been saved yet.
	Load() (*Snapshot, error)

	// Save replaces the stored snapshot.
	Save(snapshot Snapshot) error
}

// IDGenerator produces process-unique opaque identifiers.
type IDGenerator interface {
	NewID() string
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
// Times are UTC at millisecond precision so they survive serialization unchanged.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Logger writes categorized log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- data dir).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which config sources are merged.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreDataDir bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetDataDirConfigInfo returns information about the data-dir config file.
	GetDataDirConfigInfo() ConfigInfo

	// InitDataDirConfig writes the default config template into the data dir.
	InitDataDirConfig() error

	// InitGlobalConfig writes the default config template into the global config dir.
	InitGlobalConfig() error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// StateStore is the command and read surface of the mission control store.
type StateStore interface {
	AddTask(in TaskInput) string
	UpdateTask(id string, upd TaskUpdate)
	AddActivity(text string, typ ActivityType)
	AddDeliverable(in DeliverableInput) string
	AddMessage(text string, sender Sender)
	Snapshot() Snapshot
	Task(id string) (Task, bool)
}

// Responder answers user chat messages on behalf of OpenClaw.
type Responder interface {
	Respond(ctx context.Context, text string)
}

// Revision describes one saved snapshot in a versioned repository.
type Revision struct {
	When    time.Time
	Hash    string
	Message string
}

// SnapshotHistory is implemented by repositories that keep every saved snapshot.
type SnapshotHistory interface {
	History(limit int) ([]Revision, error)
	LoadRevision(hash string) (*Snapshot, error)
}
