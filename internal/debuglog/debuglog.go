// Package debuglog provides an opt-in file-backed logger. The TUI owns
// stdout, so diagnostics go to a file when enabled and nowhere otherwise.
package debuglog

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Open returns a logger appending tint-formatted records to path, plus a
// close function. An empty path yields a discarding logger.
func Open(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}

	handler := tint.NewHandler(f, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: true,
	})
	return slog.New(handler), f.Close, nil
}
