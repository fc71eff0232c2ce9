package logger

import (
	"sync"

	"github.com/philipp01105/textlog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// stdout/stderr, no backend, no filter
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. Call it during startup, before
// other goroutines log through the package-level functions.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) (int, error) {
	return Default().Infov(format, args)
}

// Infov logs a formatted info message with a slice of arguments using
// the default logger
func Infov(format string, args []interface{}) (int, error) {
	return Default().Infov(format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) (int, error) {
	return Default().Errorf(format, args...)
}

// Debugf logs a leveled debug message for the calling thread using the
// default logger
func Debugf(level Level, format string, args ...interface{}) {
	l := Default()
	l.Debugv(level, l.identity(), format, args)
}

// Debugv logs a leveled debug message on behalf of id using the
// default logger
func Debugv(level Level, id core.Identity, format string, args []interface{}) {
	Default().Debugv(level, id, format, args)
}

// Appendf renders a message into acc using the default logger
func Appendf(acc Accumulator, format string, args ...interface{}) (int, error) {
	return Default().Appendf(acc, format, args...)
}

// Flush flushes the default logger's output stream
func Flush() error {
	return Default().Flush()
}

// LevelName returns the display name of level in the default logger
func LevelName(level Level) string {
	return Default().LevelName(level)
}
