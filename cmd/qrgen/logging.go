package main

import (
	"log/slog"
	"os"
)

// setupLogging configures the default slog handler to write to stderr,
// keeping stdout reserved for the rendered symbol — grounded in
// dfbb-im2code's cmd/im2code setupLogging, simplified to a single
// verbose/quiet toggle instead of a config-file log level.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
