package main

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger constructs a text logger at the given level. Logs go to stderr
// unless file is set, in which case they go to a rotating log file.
// Stdout is never used because the stdio transport owns it.
// The returned closer is nil when logging to stderr.
func NewLogger(level, file string, stderr io.Writer) (*slog.Logger, io.Closer) {
	var (
		w      = stderr
		closer io.Closer
	)
	if file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w, closer = lj, lj
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(h), closer
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
