package handler

// MultiStream writes every message to several streams in order
type MultiStream struct {
	streams []Stream
}

// NewMultiStream creates a new multi-stream
func NewMultiStream(streams ...Stream) *MultiStream {
	return &MultiStream{streams: streams}
}

// Write writes p to all streams. The byte count is the one reported by
// the last stream; the error is the last non-nil error, if any.
func (m *MultiStream) Write(p []byte) (n int, err error) {
	for _, s := range m.streams {
		var werr error
		n, werr = s.Write(p)
		if werr != nil {
			err = werr
		}
	}
	return n, err
}

// Flush flushes all streams
func (m *MultiStream) Flush() error {
	var lastErr error
	for _, s := range m.streams {
		if err := s.Flush(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
