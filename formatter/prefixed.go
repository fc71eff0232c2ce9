package formatter

import (
	"fmt"

	"github.com/philipp01105/textlog/core"
)

const prefixFormat = "%-8s %-5d "

// appendPrefix appends the fixed-width level/identity header to buf
func appendPrefix(buf []byte, name string, id core.Identity) []byte {
	return fmt.Appendf(buf, prefixFormat, name, uint32(id))
}

// Prefix returns the header RenderPrefixed puts in front of a message
func (f *Formatter) Prefix(level core.Level, id core.Identity) string {
	var pre [32]byte
	return string(appendPrefix(pre[:0], f.levels.Name(level), id))
}

// RenderPrefixed renders the header for level and id immediately
// followed by the expansion of format. The returned length is the
// header length plus the expansion length.
func (f *Formatter) RenderPrefixed(level core.Level, id core.Identity, format string, args ...interface{}) (*core.Message, error) {
	return f.RenderPrefixedArgs(level, id, format, args)
}

// RenderPrefixedArgs is RenderPrefixed with the arguments as a slice
func (f *Formatter) RenderPrefixedArgs(level core.Level, id core.Identity, format string, args []interface{}) (*core.Message, error) {
	// The header is bounded; build it on the stack first.
	var pre [32]byte
	prefix := appendPrefix(pre[:0], f.levels.Name(level), id)

	m, err := f.newMessage(len(prefix))
	if err != nil {
		return nil, err
	}
	buf := append(m.Buffer(), prefix...)
	return f.finish(m, fmt.Appendf(buf, format, args...))
}
