// Package logging builds the structured logger shared by the commands.
//
// The screensaver owns the terminal while it runs, so its logger must never
// write to stdout or stderr; [Open] routes records to a file or discards them.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "lifesaver",
	})
}

// Open returns a logger appending to path. An empty path yields a logger that
// discards everything. The returned close func is never nil.
func Open(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return New(io.Discard, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}

// ParseLevel maps a level name ("debug", "info", ...) to a log.Level.
func ParseLevel(s string) (log.Level, error) {
	return log.ParseLevel(s)
}
