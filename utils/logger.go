package utils

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger for local runs and a JSON logger
// everywhere else. Production logs at info, other environments at debug.
func NewLogger(w io.Writer, env string) *slog.Logger {
	level := slog.LevelDebug
	if IsProdEnv(env) {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if IsLocalEnv(env) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
