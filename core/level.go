package core

// Level indexes a LevelTable. The default table names the severity
// levels; a debug table can name arbitrary debug categories.
type Level int

const (
	// UnknownLevel is the zero level and has no meaningful severity
	UnknownLevel Level = iota
	// DebugLevel for debugging output
	DebugLevel
	// InfoLevel for informational output
	InfoLevel
	// ErrorLevel for error output
	ErrorLevel
)

// UnknownName is the name returned for levels past the end of a table
const UnknownName = "Unknown"

// LevelTable is a read-only mapping from Level to display name. The
// names slice always holds one extra trailing slot with UnknownName;
// any level at or past that slot resolves to it.
type LevelTable struct {
	names []string
}

// NewLevelTable creates a table with the given names for levels
// 0..len(names)-1. The Unknown slot is appended automatically.
func NewLevelTable(names ...string) LevelTable {
	n := make([]string, len(names), len(names)+1)
	copy(n, names)
	return LevelTable{names: append(n, UnknownName)}
}

// DefaultLevels names the severity levels.
var DefaultLevels = NewLevelTable("Unknown", "Debug", "Info", "Error")

// Len returns the number of real entries, excluding the Unknown slot
func (t LevelTable) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.names) - 1
}

// Name returns the display name for level. Levels at or beyond Len
// resolve to UnknownName. Negative levels are a caller error; they
// resolve to UnknownName instead of panicking.
func (t LevelTable) Name(level Level) string {
	last := t.Len()
	if len(t.names) == 0 {
		return UnknownName
	}
	if level >= Level(last) || level < 0 {
		level = Level(last)
	}
	return t.names[level]
}

// String returns the name of the level in DefaultLevels
func (l Level) String() string {
	return DefaultLevels.Name(l)
}

// LevelName returns the name of level in DefaultLevels
func LevelName(level Level) string {
	return DefaultLevels.Name(level)
}

// Severity is the class of a routed message. It selects the local
// stream used and tags backend deliveries.
type Severity uint8

const (
	// SeverityInfo routes to the local output stream
	SeverityInfo Severity = iota
	// SeverityError routes to the local error stream
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
