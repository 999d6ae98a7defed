// Package log configures the process-wide zerolog logger.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once. Level falls back to
// info when empty or unparseable; output defaults to stderr.
func Configure(level string, output io.Writer) {
	once.Do(func() {
		lvl := zerolog.InfoLevel
		if level != "" {
			if parsed, err := zerolog.ParseLevel(level); err == nil {
				lvl = parsed
			}
		}
		zerolog.SetGlobalLevel(lvl)
		zerolog.TimeFieldFormat = time.RFC3339

		if output == nil {
			output = os.Stderr
		}
		base = zerolog.New(output).With().Timestamp().Logger()
	})
}

// Base returns the configured logger instance.
func Base() zerolog.Logger {
	Configure("", nil)
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
