package handler

import (
	"errors"
	"io"

	"github.com/philipp01105/textlog/core"
)

// ErrUnavailable is reported by Unavailable results
var ErrUnavailable = errors.New("handler: backend unavailable")

// Backend delivers text to a remote or alternate transport
type Backend interface {
	// Send delivers p tagged with the given severity
	Send(sev core.Severity, p []byte) BackendResult
}

// Priority is a system log priority
type Priority int

// PriorityInfo is the only priority the Router records at. Error
// messages use it too.
const PriorityInfo Priority = 6

// SystemLog is the operating system's log facility
type SystemLog interface {
	// Record writes text as a single record
	Record(priority Priority, text string) error
}

// Stream is a local byte-oriented output
type Stream interface {
	io.Writer
	// Flush pushes buffered bytes to the underlying output
	Flush() error
}

// BackendStatus is the outcome class of a Backend.Send
type BackendStatus uint8

const (
	// StatusDelivered means the backend accepted the message
	StatusDelivered BackendStatus = iota
	// StatusUnavailable means the message was not delivered and the
	// next destination should be tried
	StatusUnavailable
	// StatusFailed means delivery was attempted and failed
	StatusFailed
)

// String returns the string representation of the status
func (s BackendStatus) String() string {
	switch s {
	case StatusDelivered:
		return "delivered"
	case StatusUnavailable:
		return "unavailable"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BackendResult is the three-way result of Backend.Send. A zero-length
// delivery is distinct from Unavailable.
type BackendResult struct {
	status BackendStatus
	n      int
	err    error
}

// Delivered reports that n bytes were accepted
func Delivered(n int) BackendResult {
	return BackendResult{status: StatusDelivered, n: n}
}

// Unavailable reports that the backend could not take the message
func Unavailable() BackendResult {
	return BackendResult{status: StatusUnavailable, err: ErrUnavailable}
}

// Failed reports a delivery failure
func Failed(err error) BackendResult {
	if err == nil {
		err = errors.New("handler: backend failed")
	}
	return BackendResult{status: StatusFailed, err: err}
}

// Status returns the outcome class
func (r BackendResult) Status() BackendStatus {
	return r.status
}

// N returns the number of bytes delivered
func (r BackendResult) N() int {
	return r.n
}

// Err returns the failure, if any
func (r BackendResult) Err() error {
	return r.err
}

// flusher is implemented by writers with their own buffering
type flusher interface {
	Flush() error
}

// writerStream adapts a plain io.Writer to Stream
type writerStream struct {
	io.Writer
}

// StreamOf adapts w to a Stream. Flush calls w's Flush method if it has
// one and is a no-op otherwise; *os.File is not synced.
func StreamOf(w io.Writer) Stream {
	if s, ok := w.(Stream); ok {
		return s
	}
	return &writerStream{Writer: w}
}

func (w *writerStream) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}
