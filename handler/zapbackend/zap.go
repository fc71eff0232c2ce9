// Package zapbackend delivers routed text to a go.uber.org/zap logger.
//
// Info messages are written at zapcore.InfoLevel and error messages at
// zapcore.ErrorLevel. When the logger does not accept a level the
// backend reports itself unavailable, so the Router falls back to the
// next destination instead of dropping the message.
package zapbackend

import (
	"bytes"
	"errors"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/textlog/core"
	"github.com/philipp01105/textlog/handler"
)

// Backend is a handler.Backend writing to a zap logger
type Backend struct {
	logger *zap.Logger
}

var _ handler.Backend = (*Backend)(nil)

// New creates a backend on logger. A nil logger yields a backend that
// is always unavailable.
func New(logger *zap.Logger) *Backend {
	return &Backend{logger: logger}
}

// NewProduction creates a backend on zap's production configuration
func NewProduction() (*Backend, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return New(logger), nil
}

func levelFor(sev core.Severity) zapcore.Level {
	if sev == core.SeverityError {
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// Send writes p as one zap entry. Trailing newlines are dropped since
// zap terminates entries itself; the reported count is len(p).
func (b *Backend) Send(sev core.Severity, p []byte) handler.BackendResult {
	if b.logger == nil {
		return handler.Unavailable()
	}
	ce := b.logger.Check(levelFor(sev), string(bytes.TrimRight(p, "\n")))
	if ce == nil {
		return handler.Unavailable()
	}
	ce.Write()
	return handler.Delivered(len(p))
}

// Close syncs the logger. Sync errors from outputs that cannot be
// synced, such as a terminal, are ignored.
func (b *Backend) Close() error {
	if b.logger == nil {
		return nil
	}
	err := b.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
