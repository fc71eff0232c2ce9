package logger

import "github.com/philipp01105/textlog/core"

// DebugFilter restricts debug output to a single caller identity
type DebugFilter struct {
	id core.Identity
}

// NewDebugFilter creates a filter for id. core.NoFilter lets every
// identity through.
func NewDebugFilter(id core.Identity) DebugFilter {
	return DebugFilter{id: id}
}

// Active reports whether a filter identity is set
func (f DebugFilter) Active() bool {
	return f.id != core.NoFilter
}

// Identity returns the filter identity
func (f DebugFilter) Identity() core.Identity {
	return f.id
}

// Allow reports whether a debug message from id may proceed
func (f DebugFilter) Allow(id core.Identity) bool {
	return f.id == core.NoFilter || f.id == id
}
