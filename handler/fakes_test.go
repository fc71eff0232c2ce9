package handler

import (
	"bytes"
	"errors"
	"sync"

	"github.com/philipp01105/textlog/core"
)

type fakeBackend struct {
	mu     sync.Mutex
	result BackendResult
	sent   []string
	sevs   []core.Severity
}

func (b *fakeBackend) Send(sev core.Severity, p []byte) BackendResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, string(p))
	b.sevs = append(b.sevs, sev)
	return b.result
}

type fakeSyslog struct {
	mu       sync.Mutex
	records  []string
	priority []Priority
	err      error
}

func (s *fakeSyslog) Record(priority Priority, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, text)
	s.priority = append(s.priority, priority)
	return s.err
}

type fakeStream struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	writes   int
	flushes  int
	writeErr error
	flushErr error
	short    int
}

func (s *fakeStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.writeErr != nil {
		return s.short, s.writeErr
	}
	return s.buf.Write(p)
}

func (s *fakeStream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	return s.flushErr
}

func (s *fakeStream) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

var errBoom = errors.New("boom")
