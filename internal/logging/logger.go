// Package logging provides the leveled stderr logger used by attractgen.
// Operational messages go through a text slog.Logger; generated matrices are
// never written to the log, only to stdout or the data file.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelTrace sits below slog.LevelDebug. The generator logs each raw draw
// and its rounded value at this level.
const LevelTrace = slog.LevelDebug - 4

// Level names accepted by ParseLevel and the config file.
const (
	LevelNameInfo  = "info"
	LevelNameDebug = "debug"
	LevelNameTrace = "trace"
)

// ParseLevel returns the slog level for a LevelName* constant, ignoring case.
// Anything unrecognised, including "", yields slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case LevelNameDebug:
		return slog.LevelDebug
	case LevelNameTrace:
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a supported level. The empty string
// is valid and means info.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "", LevelNameInfo, LevelNameDebug, LevelNameTrace:
		return true
	}
	return false
}

// NewLogger returns a text logger on w that drops records below level.
// Trace records are printed with level=TRACE instead of slog's DEBUG-4.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: labelTrace,
	}))
}

func labelTrace(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
		return slog.String(slog.LevelKey, "TRACE")
	}
	return a
}
