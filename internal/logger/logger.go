package logger

import (
	"io"
	"log/slog"
	"strings"
)

// LevelNone disables all logging. It sits above every level slog defines.
const LevelNone = slog.Level(12)

// ParseLevel parses a level name. Unknown names fall back to info and report
// false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "none":
		return LevelNone, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a text logger writing to w at the named level. The "none" level
// gives a logger that discards everything.
func New(w io.Writer, level string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	if lvl >= LevelNone {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
