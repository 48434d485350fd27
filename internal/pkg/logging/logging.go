// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to stdout at Info level.
func New() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h)
}
