// Package consolehandler provides the local output streams a Router
// falls back to: a ConsoleStream wraps any io.Writer (default:
// os.Stdout) and implements handler.Stream.
//
// Buffering follows the C stdio conventions the streams replace:
//
//   - BufferAuto is line buffered when the writer is a terminal and
//     fully buffered otherwise. Terminal detection uses
//     golang.org/x/term on writers that expose a file descriptor.
//   - BufferLine flushes whenever a written message contains a newline.
//   - BufferFull only flushes when the buffer fills or Flush is called.
//   - BufferNone writes straight through, as stderr does.
//
// Writes are serialized with a mutex unless the stream is unbuffered
// and the writer is known to be safe for concurrent Write calls, in
// which case the lock is skipped entirely.
//
// Opening, closing and rotating the underlying writer is the caller's
// business; Close only flushes.
package consolehandler
