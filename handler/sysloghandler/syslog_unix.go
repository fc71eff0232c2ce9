//go:build !windows && !plan9

package sysloghandler

import (
	"log/syslog"

	"github.com/pkg/errors"

	"github.com/philipp01105/textlog/handler"
)

// recorder is the part of *syslog.Writer the SystemLog uses
type recorder interface {
	Info(m string) error
	Close() error
}

// SystemLog writes records to syslog
type SystemLog struct {
	w recorder
}

// New connects to the syslog daemon described by cfg
func New(cfg Config) (*SystemLog, error) {
	w, err := syslog.Dial(cfg.Network, cfg.Address, syslog.LOG_INFO|syslog.LOG_USER, cfg.Tag)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to syslog %q", cfg.Network+cfg.Address)
	}
	return &SystemLog{w: w}, nil
}

// Record writes text as one record. Every priority is recorded as
// informational.
func (s *SystemLog) Record(_ handler.Priority, text string) error {
	return s.w.Info(text)
}

// Close closes the connection to the daemon
func (s *SystemLog) Close() error {
	return s.w.Close()
}
