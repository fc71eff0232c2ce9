// Package formatter renders printf-style templates into core.Message
// values without ever truncating them.
//
// Render produces the plain expansion of a template. RenderPrefixed
// produces the same expansion behind a fixed-width header built from a
// level name and a caller identity:
//
//	debug    1234  <rendered text>
//
// The level name is left-justified to 8 columns and the identity to 5,
// each followed by a single space.
//
// Rendering starts in a pooled buffer of DefaultInitialSize (512) bytes
// and grows it in place through fmt.Appendf, so a message of any
// length is produced in a single pass and the returned length is
// always the full rendered length. Config.MaxSize bounds that growth;
// a render that would exceed it fails with ErrAllocation and yields no
// message at all.
//
// A Formatter is immutable after New and safe for concurrent use. Each
// call works in its own buffer.
package formatter
