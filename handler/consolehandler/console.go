package consolehandler

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sync"
)

// Buffering selects how a ConsoleStream buffers writes
type Buffering int

const (
	// BufferAuto is line buffering on a terminal, full buffering otherwise
	BufferAuto Buffering = iota
	// BufferNone writes every message straight through
	BufferNone
	// BufferLine flushes after every message containing a newline
	BufferLine
	// BufferFull flushes only when the buffer is full or on Flush
	BufferFull
)

// String returns the string representation of the buffering mode
func (b Buffering) String() string {
	switch b {
	case BufferAuto:
		return "auto"
	case BufferNone:
		return "none"
	case BufferLine:
		return "line"
	case BufferFull:
		return "full"
	default:
		return "unknown"
	}
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the stream to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// flusher is implemented by writers with their own buffering
type flusher interface {
	Flush() error
}

// ConsoleConfig holds configuration for a console stream
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Buffering mode (default: BufferAuto)
	Buffering Buffering
	// BufferSize is the buffer size in bytes for buffered modes (default: 4096)
	BufferSize int
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Only unbuffered streams skip locking. Automatically detected for
	// io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	if cfg.Buffering == BufferAuto {
		if isTerminal(cfg.Writer) {
			cfg.Buffering = BufferLine
		} else {
			cfg.Buffering = BufferFull
		}
	}
}

// ConsoleStream is a local output stream. It implements handler.Stream.
type ConsoleStream struct {
	mu             sync.Mutex
	writer         io.Writer
	buf            *bufio.Writer // nil when unbuffered
	buffering      Buffering
	concurrentSafe bool
}

// NewConsoleStream creates a new console stream
func NewConsoleStream(cfg ConsoleConfig) *ConsoleStream {
	applyConsoleDefaults(&cfg)

	s := &ConsoleStream{
		writer:         cfg.Writer,
		buffering:      cfg.Buffering,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
	}
	if cfg.Buffering != BufferNone {
		s.buf = bufio.NewWriterSize(cfg.Writer, cfg.BufferSize)
	}
	return s
}

// Stdout returns an auto-buffered stream on os.Stdout
func Stdout() *ConsoleStream {
	return NewConsoleStream(ConsoleConfig{Writer: os.Stdout})
}

// Stderr returns an unbuffered stream on os.Stderr
func Stderr() *ConsoleStream {
	return NewConsoleStream(ConsoleConfig{Writer: os.Stderr, Buffering: BufferNone})
}

// Buffering returns the effective buffering mode
func (s *ConsoleStream) Buffering() Buffering {
	return s.buffering
}

// Writer returns the underlying writer
func (s *ConsoleStream) Writer() io.Writer {
	return s.writer
}

// Write writes p as one unit. Concurrent writes never interleave
// within a message.
func (s *ConsoleStream) Write(p []byte) (int, error) {
	if s.buf == nil {
		if s.concurrentSafe {
			return s.writer.Write(p)
		}
		s.mu.Lock()
		n, err := s.writer.Write(p)
		s.mu.Unlock()
		return n, err
	}

	s.mu.Lock()
	n, err := s.buf.Write(p)
	if err == nil && s.buffering == BufferLine && bytes.IndexByte(p, '\n') >= 0 {
		err = s.buf.Flush()
	}
	s.mu.Unlock()
	return n, err
}

// Flush writes buffered bytes to the underlying writer, then flushes
// the writer itself if it has a Flush method.
func (s *ConsoleStream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf != nil {
		if err := s.buf.Flush(); err != nil {
			return err
		}
	}
	if f, ok := s.writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Buffered returns the number of bytes waiting in the buffer
func (s *ConsoleStream) Buffered() int {
	if s.buf == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Buffered()
}

// Close flushes the stream. The underlying writer is left open.
func (s *ConsoleStream) Close() error {
	return s.Flush()
}
