package formatter

import (
	"errors"

	"github.com/philipp01105/textlog/core"
)

// DefaultInitialSize is the starting buffer capacity for a render
const DefaultInitialSize = 512

// ErrAllocation is returned when a message cannot be given storage.
// No partial message is produced.
var ErrAllocation = errors.New("formatter: message allocation failed")

// Config holds formatter configuration
type Config struct {
	// InitialSize is the starting buffer capacity (default: 512)
	InitialSize int
	// MaxSize bounds the rendered length in bytes. Zero means unbounded.
	MaxSize int
	// Levels names the levels used in prefixes (default: core.DefaultLevels)
	Levels *core.LevelTable
}

// Formatter renders templates into messages
type Formatter struct {
	initialSize int
	maxSize     int
	levels      core.LevelTable
}

// New creates a new formatter
func New(cfg Config) *Formatter {
	if cfg.InitialSize <= 0 {
		cfg.InitialSize = DefaultInitialSize
	}
	if cfg.MaxSize < 0 {
		cfg.MaxSize = 0
	}
	levels := core.DefaultLevels
	if cfg.Levels != nil {
		levels = *cfg.Levels
	}
	return &Formatter{
		initialSize: cfg.InitialSize,
		maxSize:     cfg.MaxSize,
		levels:      levels,
	}
}

// Levels returns the level table used for prefixes
func (f *Formatter) Levels() core.LevelTable {
	return f.levels
}

// newMessage returns a message with room for at least n bytes, or
// ErrAllocation when n already exceeds the configured bound.
func (f *Formatter) newMessage(n int) (*core.Message, error) {
	if f.maxSize > 0 && n > f.maxSize {
		return nil, ErrAllocation
	}
	size := f.initialSize
	if n > size {
		size = n + 1
	}
	return core.NewMessage(size), nil
}

// finish stores buf into m, or releases m when buf is over the bound
func (f *Formatter) finish(m *core.Message, buf []byte) (*core.Message, error) {
	m.SetBuffer(buf)
	if f.maxSize > 0 && len(buf) > f.maxSize {
		m.Release()
		return nil, ErrAllocation
	}
	return m, nil
}

var defaultFormatter = New(Config{})

// Default returns the formatter used by the package-level functions
func Default() *Formatter {
	return defaultFormatter
}
