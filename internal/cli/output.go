package cli

import (
	"encoding/json"
	"io"
	"time"
)

// timeLayout is used for every timestamp printed by the CLI.
const timeLayout = "2006-01-02 15:04"

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatTime renders t in local time.
func formatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

// shortID returns the first 8 characters of an identifier.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// orDash returns s, or "-" when s is empty.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
