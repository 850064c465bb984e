// Package logging builds the zap logger used by the relnotes CLI.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects how much the CLI reports on stderr.
type Level int

const (
	// Quiet reports errors only.
	Quiet Level = iota
	// Normal reports warnings and informational messages.
	Normal
	// Verbose adds debug messages.
	Verbose
)

// String returns the flag-style name of the level.
func (l Level) String() string {
	switch l {
	case Quiet:
		return "quiet"
	case Verbose:
		return "verbose"
	default:
		return "normal"
	}
}

// LevelFor maps the --quiet and --verbose flags to a Level.
// Quiet wins when both are set.
func LevelFor(quiet, verbose bool) Level {
	switch {
	case quiet:
		return Quiet
	case verbose:
		return Verbose
	default:
		return Normal
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Quiet:
		return zapcore.ErrorLevel
	case Verbose:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a console logger writing to w.
// Timestamps and callers are omitted: output is meant for a terminal or CI log.
func New(w io.Writer, level Level) *zap.Logger {
	if w == nil {
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = zapcore.OmitKey
	ec.CallerKey = zapcore.OmitKey
	ec.NameKey = zapcore.OmitKey
	ec.StacktraceKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), level.zapLevel())
	return zap.New(core).Named("relnotes")
}

// Printf adapts logger to the func(string, ...any) shape expected by
// maxprocs.Logger, logging at debug level.
func Printf(logger *zap.Logger) func(string, ...any) {
	sugar := logger.Sugar()
	return func(format string, args ...any) {
		sugar.Debugf(format, args...)
	}
}
