// Package core defines the shared types used across textlog.
//
// It provides the Level type and the LevelTable registry that maps a
// level to its display name, the Message type that carries one rendered
// log message from a formatter to exactly one sink, the Identity type
// that names the calling thread or job, and the Severity class that
// decides which destinations a message is routed to.
//
// Message storage is pooled via sync.Pool. A formatter obtains a
// Message with NewMessage and the consumer that finally handles it
// calls Release exactly once. Buffers that grew past 64 KiB are not
// returned to the pool so that a single huge log line does not
// permanently inflate memory usage.
//
// Everything in this package is free of global mutable state except
// the pool itself, so the types can be shared between goroutines.
package core
