//go:build windows || plan9

package sysloghandler

import "github.com/philipp01105/textlog/handler"

// SystemLog is unavailable on this platform
type SystemLog struct{}

// New always fails with ErrUnsupported
func New(cfg Config) (*SystemLog, error) {
	return nil, ErrUnsupported
}

// Record always fails with ErrUnsupported
func (s *SystemLog) Record(_ handler.Priority, _ string) error {
	return ErrUnsupported
}

// Close is a no-op
func (s *SystemLog) Close() error {
	return nil
}
