// Package logging provides the structured, leveled event stream used for
// failure diagnosis. Log output is never part of pass/fail logic.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a suite logger.
type Options struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is the writer for log output (default: os.Stderr).
	Output io.Writer
	// Prefix is the component or scenario prefix (e.g. a case ID).
	Prefix string
}

// parseLevel converts a string level to log.Level.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a logger with the given options.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           parseLevel(opts.Level),
		Prefix:          opts.Prefix,
		TimeFormat:      time.RFC3339,
		ReportTimestamp: true,
	})
}

// Default creates a logger with default options, respecting SHOPTEST_LOG_LEVEL.
func Default() *log.Logger {
	return New(Options{Level: os.Getenv("SHOPTEST_LOG_LEVEL")})
}
