package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string        `toml:"-"`
	Storage   StorageConfig   `toml:"storage"`
	Responder ResponderConfig `toml:"responder"`
	Board     BoardConfig     `toml:"board"`
	Log       LogConfig       `toml:"log"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend       string `toml:"backend,omitempty"`        // "json" (default), "sqlite" or "git"
	Namespace     string `toml:"namespace,omitempty"`      // Storage key for the snapshot record
	EncryptionKey string `toml:"encryption_key,omitempty"` // 64 hex chars enables AES-256-GCM (json and git backends)
}

// ResponderConfig holds settings for the simulated OpenClaw responder from [responder].
type ResponderConfig struct {
	Delay   string `toml:"delay,omitempty"`  // Go duration, e.g. "500ms"
	Prefix  string `toml:"prefix,omitempty"` // Prepended to the echoed command
	Enabled bool   `toml:"enabled"`
}

// DelayDuration parses Delay, falling back to DefaultResponderDelay.
func (c ResponderConfig) DelayDuration() time.Duration {
	d, err := time.ParseDuration(c.Delay)
	if err != nil || d < 0 {
		return DefaultResponderDelay
	}
	return d
}

// BoardConfig holds settings from the [board] section.
type BoardConfig struct {
	Source string `toml:"source,omitempty"` // Only tasks from this source are shown on the board ("" = all)
	Seed   bool   `toml:"seed"`             // Add the starter task when the board is empty
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendGit    = "git"
)

// Default configuration values.
const (
	DefaultNamespace       = "mission-control-storage"
	DefaultBackend         = BackendJSON
	DefaultLogLevel        = "info"
	DefaultResponderDelay  = 500 * time.Millisecond
	DefaultResponderPrefix = "Acknowledged: "
)

// Directory and file names.
const (
	AppDirName     = "mission-control" // Directory name under XDG config/data homes
	ConfigFileName = "config.toml"     // Config file name
	LogsDirName    = "logs"
	LogFileName    = "mission-control.log"
	SQLiteFileName = "mission-control.db"
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// DataDirConfigPath returns the config path inside a data directory.
func DataDirConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// LogPath returns the log file path inside a data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   DefaultBackend,
			Namespace: DefaultNamespace,
		},
		Responder: ResponderConfig{
			Enabled: true,
			Delay:   DefaultResponderDelay.String(),
			Prefix:  DefaultResponderPrefix,
		},
		Board: BoardConfig{
			Seed:   true,
			Source: string(SourceInternal),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// RenderConfigTemplate renders the commented default config file.
func RenderConfigTemplate() string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	def := NewDefaultConfig()
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, def); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
