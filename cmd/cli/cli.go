// Package cli contains the state shared by all lacodec commands: configuration, logging and output styles
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/lacodec/pkg/isa/loongarch64"
	"github.com/Manu343726/lacodec/pkg/logging"
	"github.com/fatih/color"
	"github.com/spf13/viper"
)

// Output styles
var (
	ColorName   = color.New(color.FgHiMagenta, color.Bold)
	ColorValue  = color.New(color.FgWhite, color.Bold)
	ColorHex    = color.New(color.FgMagenta)
	ColorBinary = color.New(color.FgCyan)
	ColorInstr  = color.New(color.FgYellow)
	ColorError  = color.New(color.FgRed, color.Bold)
)

// Returns the logger configured by the "log" settings. The returned closer must be closed once the command finishes
func Logger() (*slog.Logger, io.Closer, error) {
	return logging.New(os.Stderr, logging.Options{
		Level: viper.GetString("log.level"),
		File:  viper.GetString("log.file"),
	})
}

// Returns the loongarch64 backend configured by the "isa" settings
func Backend(logger *slog.Logger) (*loongarch64.Backend, error) {
	settings, err := loongarch64.LoadSettings(viper.GetViper())

	if err != nil {
		return nil, err
	}

	backend := loongarch64.NewBackend(settings, logger)
	logger.Debug("backend ready", "backend", backend.String())

	return backend, nil
}

// Runs a function with a backend built from the current configuration
func WithBackend(run func(backend *loongarch64.Backend, logger *slog.Logger) error) error {
	logger, closer, err := Logger()

	if err != nil {
		return err
	}

	defer closer.Close()

	backend, err := Backend(logger)

	if err != nil {
		return err
	}

	return run(backend, logger)
}
