// Package handler routes rendered messages to exactly one destination.
//
// A Router holds the collaborators a message can be written to and
// tries them in a fixed order:
//
//  1. the Backend, when one is configured. A Backend answers every
//     Send with a BackendResult: Delivered(n) ends routing with n,
//     Failed(err) ends routing with err, and Unavailable falls through.
//  2. the SystemLog, when one is configured. The whole message becomes
//     one record at PriorityInfo and the rendered length is reported.
//  3. the local stream: Output for info messages, ErrorOutput for
//     error messages. When a distinct SecondaryErrorOutput is set, error
//     messages are written to it first and then to ErrorOutput, and the
//     result of the last write is reported.
//
// Whatever branch is taken, the Router releases the message exactly
// once. The Router is immutable after NewRouter and keeps no per-call
// state, so concurrent callers only share the collaborators. Those are
// expected to make a single Write or Record atomic.
//
// All routing decisions are counted in Stats, which can be queried at
// runtime for monitoring.
//
// The package also contains SlogHandler, which lets a log/slog.Logger
// emit through a Router.
package handler
