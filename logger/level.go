package logger

import (
	"strings"

	"github.com/philipp01105/textlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	UnknownLevel = core.UnknownLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	ErrorLevel   = core.ErrorLevel
)

// ParseLevel looks s up in table, ignoring case. Unknown names return
// false.
func ParseLevel(table core.LevelTable, s string) (Level, bool) {
	for i := 0; i < table.Len(); i++ {
		if strings.EqualFold(table.Name(Level(i)), s) {
			return Level(i), true
		}
	}
	return UnknownLevel, false
}
