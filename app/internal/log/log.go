// SPDX-License-Identifier: Unlicense OR MIT

// Package log builds the zerolog logger shared by the backends.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"sdlshim.org/internal/config"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to stderr.
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a logger writing to cfg.Output.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    !isTerminal(out),
		}
	}
	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("component", "sdlshim").
		Logger()
}

// FromConfig creates a logger from the log section of the shim
// configuration. An unknown level is reported and info is used.
func FromConfig(c config.LogConfig) (zerolog.Logger, error) {
	cfg := DefaultConfig()
	if c.Format != "" {
		cfg.Format = c.Format
	}
	var err error
	if c.Level != "" {
		lvl, perr := zerolog.ParseLevel(c.Level)
		if perr != nil {
			err = fmt.Errorf("log: %w", perr)
		} else {
			cfg.Level = lvl
		}
	}
	return New(cfg), err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}
