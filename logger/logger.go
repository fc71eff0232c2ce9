package logger

import (
	"io"
	"log/slog"

	"go.uber.org/multierr"

	"github.com/philipp01105/textlog/core"
	"github.com/philipp01105/textlog/formatter"
	"github.com/philipp01105/textlog/handler"
	"github.com/philipp01105/textlog/handler/consolehandler"
)

// Accumulator is a caller-owned growable byte sink
type Accumulator interface {
	// Append appends p and returns the number of bytes appended
	Append(p []byte) int
}

// Logger is the main logging interface (immutable)
type Logger struct {
	router    *handler.Router
	formatter *formatter.Formatter
	filter    DebugFilter
	identity  core.IdentitySource
	closers   []io.Closer
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	backend         handler.Backend
	syslog          handler.SystemLog
	output          handler.Stream
	errOutput       handler.Stream
	secondaryOutput handler.Stream
	filter          core.Identity
	formatterConfig formatter.Config
	identity        core.IdentitySource
	stats           *handler.Stats
	closers         []io.Closer
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		filter:   core.NoFilter,
		identity: core.CurrentIdentity,
	}
}

// WithBackend sets the backend, which makes backend mode active. The
// Logger closes it on Close when it implements io.Closer.
func (b *Builder) WithBackend(backend handler.Backend) *Builder {
	b.backend = backend
	return b
}

// WithSystemLog enables system log mode. The Logger closes it on Close
// when it implements io.Closer.
func (b *Builder) WithSystemLog(s handler.SystemLog) *Builder {
	b.syslog = s
	return b
}

// WithOutput sets the local output stream (default: buffered stdout)
func (b *Builder) WithOutput(s handler.Stream) *Builder {
	b.output = s
	return b
}

// WithErrorOutput sets the local error stream (default: unbuffered stderr)
func (b *Builder) WithErrorOutput(s handler.Stream) *Builder {
	b.errOutput = s
	return b
}

// WithSecondaryErrorOutput sets a stream that also receives every
// error message, written before the error stream, when the two differ
func (b *Builder) WithSecondaryErrorOutput(s handler.Stream) *Builder {
	b.secondaryOutput = s
	return b
}

// WithFilter restricts debug output to identity id
func (b *Builder) WithFilter(id core.Identity) *Builder {
	b.filter = id
	return b
}

// WithLevels sets the level table used for debug prefixes and LevelName
func (b *Builder) WithLevels(table core.LevelTable) *Builder {
	b.formatterConfig.Levels = &table
	return b
}

// WithFormatter sets the formatter configuration. A Levels table set
// with WithLevels is kept unless cfg carries its own.
func (b *Builder) WithFormatter(cfg formatter.Config) *Builder {
	if cfg.Levels == nil {
		cfg.Levels = b.formatterConfig.Levels
	}
	b.formatterConfig = cfg
	return b
}

// WithIdentitySource sets where Debugf gets the caller identity
func (b *Builder) WithIdentitySource(src core.IdentitySource) *Builder {
	if src != nil {
		b.identity = src
	}
	return b
}

// WithStats sets the routing statistics collector
func (b *Builder) WithStats(s *handler.Stats) *Builder {
	b.stats = s
	return b
}

// WithCloser registers a resource the Logger closes on Close
func (b *Builder) WithCloser(c io.Closer) *Builder {
	b.closers = append(b.closers, c)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	output := b.output
	if output == nil {
		output = consolehandler.Stdout()
	}
	errOutput := b.errOutput
	if errOutput == nil {
		errOutput = consolehandler.Stderr()
	}

	closers := append([]io.Closer(nil), b.closers...)
	if c, ok := b.backend.(io.Closer); ok {
		closers = append(closers, c)
	}
	if c, ok := b.syslog.(io.Closer); ok {
		closers = append(closers, c)
	}

	return &Logger{
		router: handler.NewRouter(handler.RouterConfig{
			Backend:              b.backend,
			SystemLog:            b.syslog,
			Output:               output,
			ErrorOutput:          errOutput,
			SecondaryErrorOutput: b.secondaryOutput,
			Stats:                b.stats,
		}),
		formatter: formatter.New(b.formatterConfig),
		filter:    NewDebugFilter(b.filter),
		identity:  b.identity,
		closers:   closers,
	}
}

// Infof renders an info message and routes it. It returns the count
// reported by the destination that took the message.
func (l *Logger) Infof(format string, args ...interface{}) (int, error) {
	return l.Infov(format, args)
}

// Infov is Infof with the arguments passed as a slice
func (l *Logger) Infov(format string, args []interface{}) (int, error) {
	m, err := l.formatter.RenderArgs(format, args)
	if err != nil {
		return 0, err
	}
	return l.router.Info(m)
}

// InfoBytes routes already rendered bytes as an info message. A nil
// slice is a no-op.
func (l *Logger) InfoBytes(p []byte) (int, error) {
	if p == nil {
		return 0, nil
	}
	return l.router.Info(core.MessageFromBytes(p))
}

// Errorf renders an error message and routes it to the error
// destinations
func (l *Logger) Errorf(format string, args ...interface{}) (int, error) {
	m, err := l.formatter.RenderArgs(format, args)
	if err != nil {
		return 0, err
	}
	return l.router.Error(m)
}

// Debugv logs a leveled debug message on behalf of identity id. When
// the logger has a filter identity and id differs, nothing is rendered
// or written.
func (l *Logger) Debugv(level Level, id core.Identity, format string, args []interface{}) {
	if !l.filter.Allow(id) {
		l.router.Counters().IncrementFiltered()
		return
	}

	m, err := l.formatter.RenderPrefixedArgs(level, id, format, args)
	if err != nil {
		return
	}
	l.router.Info(m)
}

// Debugf logs a leveled debug message for the calling thread
func (l *Logger) Debugf(level Level, format string, args ...interface{}) {
	l.Debugv(level, l.identity(), format, args)
}

// Appendf renders a message into acc instead of routing it and returns
// the number of bytes appended
func (l *Logger) Appendf(acc Accumulator, format string, args ...interface{}) (int, error) {
	m, err := l.formatter.RenderArgs(format, args)
	if err != nil {
		return 0, err
	}
	n := acc.Append(m.Bytes())
	m.Release()
	return n, nil
}

// Flush flushes the local output stream. It is a no-op in backend and
// system log mode.
func (l *Logger) Flush() error {
	return l.router.Flush()
}

// LevelName returns the display name of level
func (l *Logger) LevelName(level Level) string {
	return l.formatter.Levels().Name(level)
}

// Filter returns the debug filter
func (l *Logger) Filter() DebugFilter {
	return l.filter
}

// Router returns the router messages are sent through
func (l *Logger) Router() *handler.Router {
	return l.router
}

// Stats returns a snapshot of the routing statistics
func (l *Logger) Stats() handler.Snapshot {
	return l.router.Stats()
}

// Slog returns a log/slog.Logger that emits through this logger's
// destinations
func (l *Logger) Slog(level slog.Leveler) *slog.Logger {
	return slog.New(handler.NewSlogHandler(l.router, level))
}

// Close flushes every local stream, whatever the mode, then closes the
// backend, the system log and any registered closers. All errors are
// returned combined.
func (l *Logger) Close() error {
	err := l.router.FlushStreams()
	for _, c := range l.closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}
