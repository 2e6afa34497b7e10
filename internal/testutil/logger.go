package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Controllers take a
// logger unconditionally, so tests pass this instead of nil.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
