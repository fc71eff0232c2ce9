// Package logger is the public API of textlog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: its destinations, its
// debug filter identity, its level table and its formatter are set once
// via the Builder and never modified. Concurrent callers only ever read
// it, so it is safe for concurrent use without any locking on the
// logging path.
//
// Three paths are available:
//
//   - Infof, Errorf and Infov render a message and route it to one
//     destination: the backend when configured and available, else the
//     system log when configured, else the local output (info) or error
//     (error) stream.
//   - Debugv and Debugf are leveled debug messages. They are dropped
//     before any formatting when a filter identity is set and the
//     caller's identity differs. Delivered messages carry a fixed-width
//     level/identity prefix.
//   - Appendf renders into a caller-owned Accumulator and never touches
//     any destination.
//
// The package initializes a default Logger (stdout/stderr, no backend,
// no filter) in init(). The package-level functions delegate to it.
// Its stdout stream is line buffered on a terminal and fully buffered
// otherwise, and nothing flushes it when the process exits. Call
// logger.Flush, or Close on your own Logger, before exiting. Close
// flushes every stream even when a backend or system log is active,
// which Flush does not.
// SetDefault must only be called during startup, before concurrent
// logging begins; swapping the default while other goroutines log is
// memory safe, but which logger a concurrent call uses is unspecified.
//
//	logger.Infof("%s: %d jobs started\n", name, n)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithBackend(zapbackend.New(z)).
//	    WithFilter(42).
//	    Build()
//	defer log.Close()
package logger
