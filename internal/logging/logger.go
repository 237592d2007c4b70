// Package logging provides the stderr logger used by the gotplfmt
// commands, a thin wrapper around charmbracelet/log. Formatter output
// goes to stdout; everything here stays on stderr so piped output is
// never polluted.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One process-wide logger, set up lazily.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// ParseLevel maps a level name to a log level. Unknown or empty names
// fall back to info.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(name) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New creates a stderr logger at the given level. Timestamps and
// caller info are off; a format run's diagnostics should read like
// compiler output, not a server log.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// Default returns the process-wide logger, creating it at info level
// on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	Default()
	defaultLogger = logger
}

// SetLevel changes the level of the process-wide logger. The --debug
// flag routes through here before any command runs.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
