// Package logging builds the structured loggers used by the command line tools
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/lacodec/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Logging configuration
type Options struct {
	// Minimum level of the logged records (debug, info, warn, error)
	Level string `mapstructure:"level"`
	// If not empty, records are also written as JSON lines to this file
	File string `mapstructure:"file"`
}

// Parses a log level name (case insensitive)
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	if name == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, utils.MakeError(ErrInvalidLogLevel, "'%v'", name)
	}

	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Returns a logger writing human readable records to console, and JSON records to the log file if
// one is configured. The returned closer releases the log file
func New(console io.Writer, options Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(options.Level)

	if err != nil {
		return nil, nil, err
	}

	handlerOptions := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(console, handlerOptions)}
	var closer io.Closer = nopCloser{}

	if options.File != "" {
		file, err := os.OpenFile(options.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)

		if err != nil {
			return nil, nil, err
		}

		handlers = append(handlers, slog.NewJSONHandler(file, handlerOptions))
		closer = file
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
