// Package logging holds the process-wide structured logger. It starts as a
// no-op so library code can log unconditionally; the CLI switches it on.
package logging

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop().Sugar()

// L returns the current logger.
func L() *zap.SugaredLogger {
	return logger
}

// Initialize enables console logging on stderr. With verbose set, per-line
// classification and edit decisions are logged at debug level.
func Initialize(verbose bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}
