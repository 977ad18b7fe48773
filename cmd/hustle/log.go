package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// nopCloser is returned when logging to stderr.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger opens the log destination. The terminal belongs to the game
// while it runs, so logs go to a file unless path is "-".
func newLogger(path string, verbose bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if path != "-" && path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hustle",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
