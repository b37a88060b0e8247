// File: internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
)

// Shared by every logger built here so --debug can raise verbosity after construction
var level = new(slog.LevelVar)

// NewLogger writes text logs to w, which should be stderr so reports on stdout stay clean
func NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(w, opts)

	logger := slog.New(handler)

	slog.SetDefault(logger)
	return logger
}

func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}
