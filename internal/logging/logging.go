// Package logging builds the zerolog logger used by the tollway command.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tollway/internal/config"
)

// New returns a logger writing to w (os.Stderr when nil). Pretty selects the
// human-readable console writer. An unknown level falls back to info.
func New(cfg config.Logging, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if w == nil {
		w = os.Stderr
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).With().Timestamp().Logger().Level(Level(cfg.Level))
}

// Level parses s, defaulting to info.
func Level(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}

	return level
}
