// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/mission-control)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (data dir + global).
// Data dir config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- data dir (later takes precedence)
	var paths []string
	if !opts.IgnoreGlobal && l.globalConfDir != "" {
		paths = append(paths, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	}
	if !opts.IgnoreDataDir && l.dataDir != "" {
		paths = append(paths, domain.DataDirConfigPath(l.dataDir))
	}

	for _, path := range paths {
		fc, warnings, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		fc.mergeInto(base)
		base.Warnings = append(base.Warnings, warnings...)
	}

	return base, nil
}

// fileConfig mirrors domain.Config with pointer fields so that keys absent
// from a file do not override earlier sources.
type fileConfig struct {
	Storage struct {
		Backend       *string `toml:"backend"`
		Namespace     *string `toml:"namespace"`
		EncryptionKey *string `toml:"encryption_key"`
	} `toml:"storage"`
	Responder struct {
		Enabled *bool   `toml:"enabled"`
		Delay   *string `toml:"delay"`
		Prefix  *string `toml:"prefix"`
	} `toml:"responder"`
	Board struct {
		Seed   *bool   `toml:"seed"`
		Source *string `toml:"source"`
	} `toml:"board"`
	Log struct {
		Level *string `toml:"level"`
	} `toml:"log"`
}

// loadFile decodes one config file and collects warnings for unknown keys.
func loadFile(path string) (*fileConfig, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, nil, err
	}

	var warnings []string
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var strict fileConfig
	if err := dec.Decode(&strict); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			for _, e := range sme.Errors {
				warnings = append(warnings, fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), strings.Join(e.Key(), ".")))
			}
		}
	}

	return &fc, warnings, nil
}

func (fc *fileConfig) mergeInto(cfg *domain.Config) {
	setString(&cfg.Storage.Backend, fc.Storage.Backend)
	setString(&cfg.Storage.Namespace, fc.Storage.Namespace)
	setString(&cfg.Storage.EncryptionKey, fc.Storage.EncryptionKey)
	setBool(&cfg.Responder.Enabled, fc.Responder.Enabled)
	setString(&cfg.Responder.Delay, fc.Responder.Delay)
	setString(&cfg.Responder.Prefix, fc.Responder.Prefix)
	setBool(&cfg.Board.Seed, fc.Board.Seed)
	setString(&cfg.Board.Source, fc.Board.Source)
	setString(&cfg.Log.Level, fc.Log.Level)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
