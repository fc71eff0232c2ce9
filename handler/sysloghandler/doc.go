// Package sysloghandler provides a handler.SystemLog backed by the
// log/syslog package. Every Record becomes exactly one syslog message.
//
// On platforms without log/syslog (windows, plan9) New always fails
// with ErrUnsupported.
package sysloghandler
