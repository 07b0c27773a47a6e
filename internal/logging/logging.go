// Package logging constructs the zap logger for assistant sessions.
// Stdout belongs to the session transcript, so logs only ever go to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing JSON lines to file at the given level.
// An empty file disables logging entirely and returns a no-op logger.
func New(file, level string) (*zap.Logger, error) {
	if file == "" {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: building logger: %w", err)
	}
	return log, nil
}
