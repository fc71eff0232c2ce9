package sysloghandler

import (
	"errors"

	"github.com/philipp01105/textlog/handler"
)

// ErrUnsupported is returned where the platform has no syslog
var ErrUnsupported = errors.New("sysloghandler: syslog is not supported on this platform")

// Config holds configuration for the system log
type Config struct {
	// Tag is the program name recorded with each message (default: os.Args[0])
	Tag string
	// Network and Address select a remote syslog daemon. Both empty
	// connects to the local daemon.
	Network string
	Address string
}

// Ensure the implementation satisfies the interface
var _ handler.SystemLog = (*SystemLog)(nil)
