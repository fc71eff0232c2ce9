// Package logrusbackend delivers routed text to a logrus logger.
//
// Info messages are logged at logrus.InfoLevel and error messages at
// logrus.ErrorLevel. A logger that has the level disabled makes the
// backend unavailable so the Router falls back.
package logrusbackend

import (
	"bytes"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/textlog/core"
	"github.com/philipp01105/textlog/handler"
)

// Backend is a handler.Backend writing to a logrus logger
type Backend struct {
	logger  logrus.FieldLogger
	leveled interface {
		IsLevelEnabled(level logrus.Level) bool
	}
}

var _ handler.Backend = (*Backend)(nil)

// New creates a backend on logger. A nil logger yields a backend that
// is always unavailable.
func New(logger *logrus.Logger) *Backend {
	if logger == nil {
		return &Backend{}
	}
	return &Backend{logger: logger, leveled: logger}
}

// NewEntry creates a backend that logs through entry, keeping its fields
func NewEntry(entry *logrus.Entry) *Backend {
	if entry == nil || entry.Logger == nil {
		return &Backend{}
	}
	return &Backend{logger: entry, leveled: entry.Logger}
}

func levelFor(sev core.Severity) logrus.Level {
	if sev == core.SeverityError {
		return logrus.ErrorLevel
	}
	return logrus.InfoLevel
}

// Send logs p as one entry without its trailing newlines. The reported
// count is len(p).
func (b *Backend) Send(sev core.Severity, p []byte) handler.BackendResult {
	if b.logger == nil {
		return handler.Unavailable()
	}
	level := levelFor(sev)
	if !b.leveled.IsLevelEnabled(level) {
		return handler.Unavailable()
	}

	msg := string(bytes.TrimRight(p, "\n"))
	if level == logrus.ErrorLevel {
		b.logger.Error(msg)
	} else {
		b.logger.Info(msg)
	}
	return handler.Delivered(len(p))
}
