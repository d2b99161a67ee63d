// Package logger configures the process-wide slog logger.
package logger

import (
	"log/slog"
	"os"
)

// Initialize creates and installs the default logger. Production gets JSON
// output, development gets text. Logs go to stderr so stdout stays clean for
// JSON output.
func Initialize(production, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
