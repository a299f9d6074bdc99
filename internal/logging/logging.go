// Package logging builds the zap logger shared by the server and the terminal browser.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger at level ("debug", "info", "warn", "error").
// verbose forces debug level.
func New(level string, verbose bool) (*zap.Logger, error) {
	config, err := productionConfig(level, verbose)
	if err != nil {
		return nil, err
	}
	return build(config)
}

// NewFile is New writing to path, for the terminal browser where stderr belongs to the UI.
func NewFile(path, level string, verbose bool) (*zap.Logger, error) {
	config, err := productionConfig(level, verbose)
	if err != nil {
		return nil, err
	}
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	return build(config)
}

func productionConfig(level string, verbose bool) (zap.Config, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return zap.Config{}, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config, nil
}

func build(config zap.Config) (*zap.Logger, error) {
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
