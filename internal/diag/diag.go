package diag

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package diag provides the diagnostics sink shared by the launcher
// components. Logging is either fully on (debug and up) or fully
// suppressed, following the single verbose toggle in settings.

// silenced sits above every real level so nothing is emitted.
const silenced = zapcore.FatalLevel + 1

// Logger is a verbosity-gated structured logger. The zero value is not
// usable; construct with New or Nop.
type Logger struct {
	level zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// New returns a console logger writing to stderr. When verbose is false the
// logger stays silent until SetVerbose flips it on.
func New(verbose bool) *Logger {
	level := zap.NewAtomicLevelAt(silenced)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		level,
	)
	return &Logger{level: level, sugar: zap.New(core).Sugar()}
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{
		level: zap.NewAtomicLevelAt(silenced),
		sugar: zap.NewNop().Sugar(),
	}
}

// SetVerbose toggles diagnostic output at runtime. Settings reloads call
// this when the user flips the verbose flag.
func (l *Logger) SetVerbose(on bool) {
	if on {
		l.level.SetLevel(zapcore.DebugLevel)
	} else {
		l.level.SetLevel(silenced)
	}
}

// Verbose reports whether diagnostics are currently emitted.
func (l *Logger) Verbose() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
