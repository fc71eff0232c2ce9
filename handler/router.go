package handler

import (
	"os"
	"reflect"

	"go.uber.org/multierr"

	"github.com/philipp01105/textlog/core"
)

// RouterConfig holds the destinations of a Router
type RouterConfig struct {
	// Backend is tried first when set
	Backend Backend
	// SystemLog enables system log mode when set
	SystemLog SystemLog
	// Output receives info messages (default: os.Stdout)
	Output Stream
	// ErrorOutput receives error messages (default: os.Stderr)
	ErrorOutput Stream
	// SecondaryErrorOutput, when set and distinct from ErrorOutput,
	// receives every error message before ErrorOutput does
	SecondaryErrorOutput Stream
	// Stats collects routing counters (default: a fresh Stats)
	Stats *Stats
}

// Router sends a rendered message to exactly one destination
type Router struct {
	backend   Backend
	syslog    SystemLog
	output    Stream
	errOutput Stream
	stats     *Stats
}

// applyRouterDefaults fills in zero-value fields with defaults.
func applyRouterDefaults(cfg *RouterConfig) {
	if cfg.Output == nil {
		cfg.Output = StreamOf(os.Stdout)
	}
	if cfg.ErrorOutput == nil {
		cfg.ErrorOutput = StreamOf(os.Stderr)
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}
}

// NewRouter creates a new router
func NewRouter(cfg RouterConfig) *Router {
	applyRouterDefaults(&cfg)

	r := &Router{
		backend:   cfg.Backend,
		syslog:    cfg.SystemLog,
		output:    cfg.Output,
		errOutput: cfg.ErrorOutput,
		stats:     cfg.Stats,
	}
	if cfg.SecondaryErrorOutput != nil && !sameStream(cfg.SecondaryErrorOutput, cfg.ErrorOutput) {
		r.errOutput = NewMultiStream(cfg.SecondaryErrorOutput, cfg.ErrorOutput)
	}
	return r
}

// sameStream reports whether a and b are the same stream without
// panicking on uncomparable dynamic types.
func sameStream(a, b Stream) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// BackendActive reports whether a backend is configured
func (r *Router) BackendActive() bool {
	return r.backend != nil
}

// SystemLogActive reports whether system log mode is on
func (r *Router) SystemLogActive() bool {
	return r.syslog != nil
}

// Info routes an info-class message and releases it. A nil message is
// a no-op returning 0.
func (r *Router) Info(m *core.Message) (int, error) {
	if m == nil {
		return 0, nil
	}
	defer m.Release()
	return r.route(core.SeverityInfo, m, r.output)
}

// Error routes an error-class message and releases it. A nil message
// is a no-op returning 0.
func (r *Router) Error(m *core.Message) (int, error) {
	if m == nil {
		return 0, nil
	}
	defer m.Release()
	return r.route(core.SeverityError, m, r.errOutput)
}

func (r *Router) route(sev core.Severity, m *core.Message, local Stream) (int, error) {
	if r.backend != nil {
		res := r.backend.Send(sev, m.Bytes())
		switch res.Status() {
		case StatusDelivered:
			r.stats.IncrementDelivered(DestinationBackend)
			return res.N(), nil
		case StatusFailed:
			r.stats.IncrementFailed()
			return 0, res.Err()
		}
		r.stats.IncrementFallback()
	}

	if r.syslog != nil {
		// The record's own outcome is not reported.
		_ = r.syslog.Record(PriorityInfo, string(m.Bytes()))
		r.stats.IncrementDelivered(DestinationSystemLog)
		return m.Len(), nil
	}

	n, err := local.Write(m.Bytes())
	if err != nil {
		r.stats.IncrementFailed()
		return n, err
	}
	r.stats.IncrementDelivered(DestinationLocalStream)
	return n, nil
}

// Flush flushes the local output stream. In backend or system log mode
// there is nothing to flush and it always succeeds.
func (r *Router) Flush() error {
	if r.backend != nil || r.syslog != nil {
		return nil
	}
	return r.output.Flush()
}

// FlushStreams flushes the output, error and secondary error streams in
// every mode, including messages that fell back from the backend.
func (r *Router) FlushStreams() error {
	err := r.output.Flush()
	if !sameStream(r.errOutput, r.output) {
		err = multierr.Append(err, r.errOutput.Flush())
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (r *Router) Stats() Snapshot {
	return r.stats.GetSnapshot()
}

// Counters returns the live statistics
func (r *Router) Counters() *Stats {
	return r.stats
}
