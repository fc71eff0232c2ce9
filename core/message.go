package core

import "sync"

// maxPooledSize caps the buffers kept in the pool
const maxPooledSize = 64 * 1024

// Message is one rendered log message. Its length is always the exact
// number of rendered bytes; the buffer is never truncated and carries
// no terminator.
//
// A Message is owned by whoever currently holds it. The final consumer
// calls Release exactly once, after which the Message must not be used.
type Message struct {
	buf      []byte
	released bool
}

var messagePool = sync.Pool{
	New: func() interface{} {
		return &Message{}
	},
}

// NewMessage retrieves an empty Message from the pool whose buffer has
// at least the given capacity
func NewMessage(capacity int) *Message {
	m := messagePool.Get().(*Message)
	m.released = false
	if cap(m.buf) < capacity {
		m.buf = make([]byte, 0, capacity)
	}
	m.buf = m.buf[:0]
	return m
}

// MessageFromBytes returns a Message holding a copy of p
func MessageFromBytes(p []byte) *Message {
	m := NewMessage(len(p))
	m.buf = append(m.buf, p...)
	return m
}

// Buffer returns the underlying buffer for appending. Callers must
// store the result back with SetBuffer when appends may have grown it.
func (m *Message) Buffer() []byte {
	return m.buf
}

// SetBuffer replaces the underlying buffer
func (m *Message) SetBuffer(b []byte) {
	m.buf = b
}

// Bytes returns the rendered bytes. The slice is only valid until
// Release is called.
func (m *Message) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.buf
}

// Len returns the rendered length. A nil Message has length 0.
func (m *Message) Len() int {
	if m == nil {
		return 0
	}
	return len(m.buf)
}

// String returns a copy of the rendered text
func (m *Message) String() string {
	if m == nil {
		return ""
	}
	return string(m.buf)
}

// Release returns the Message to the pool. Releasing nil or an already
// released Message is a no-op.
func (m *Message) Release() {
	if m == nil || m.released {
		return
	}
	m.released = true
	if cap(m.buf) > maxPooledSize {
		m.buf = nil
	} else {
		m.buf = m.buf[:0]
	}
	messagePool.Put(m)
}
