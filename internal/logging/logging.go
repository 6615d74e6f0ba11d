// Package logging builds the zerolog logger used by the command-line tools.
// Libraries in this module never build loggers themselves; they read the
// one stored on the context with zerolog.Ctx.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidFormat is returned for an unknown log format.
var ErrInvalidFormat = errors.New("invalid log format")

// Config selects the level and output format of the logger.
type Config struct {
	Level  string
	Format string // "text" or "json"
}

// New returns a logger writing to out.
func New(out io.Writer, config Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level '%s': %w", config.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	switch strings.ToLower(config.Format) {
	case "text", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	case "json", "":
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrInvalidFormat, config.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
