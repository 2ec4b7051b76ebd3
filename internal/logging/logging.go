// Package logging routes slog and the standard log package to a file so the
// terminal UI never draws over log lines.
package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the log file created under <dir>/logs
const FileName = "recall.log"

// Init initializes the logging system, writing logs to <dir>/logs/recall.log.
// Uses text format for human readability.
func Init(dir string) error {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(logDir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	slog.SetDefault(slog.New(handler))

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
