package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanirudh17/mission-control/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("store", "restored 3 tasks")

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[store]")
	assert.Contains(t, string(content), "restored 3 tasks")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("store", "debug line")
	logger.Info("store", "info line")
	logger.Warn("store", "warn line")
	logger.Error("store", "error line")

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug line")
	assert.NotContains(t, string(content), "info line")
	assert.Contains(t, string(content), "[WARN] [store] warn line")
	assert.Contains(t, string(content), "[ERROR] [store] error line")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	logger.Error("store", "nowhere")

	assert.NoError(t, logger.Close())
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	dataDir := t.TempDir()

	first := New(dataDir, slog.LevelInfo)
	first.Info("cli", "one")
	require.NoError(t, first.Close())

	second := New(dataDir, slog.LevelInfo)
	second.Info("cli", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2026, 10, 16, 9, 32, 51, 0, time.UTC)

	got := formatLog(ts, slog.LevelWarn, "responder", "reply cancelled")

	assert.Equal(t, "[2026-10-16 09:32:51] [WARN] [responder] reply cancelled\n", got)
}
