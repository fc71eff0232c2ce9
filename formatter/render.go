package formatter

import (
	"fmt"

	"github.com/philipp01105/textlog/core"
)

// Render expands format with args into a new message. An empty
// expansion is a valid zero-length message.
func (f *Formatter) Render(format string, args ...interface{}) (*core.Message, error) {
	return f.RenderArgs(format, args)
}

// RenderArgs is Render with the arguments passed as a slice. The slice
// is only read, so the same arguments can be rendered again.
func (f *Formatter) RenderArgs(format string, args []interface{}) (*core.Message, error) {
	m, err := f.newMessage(0)
	if err != nil {
		return nil, err
	}
	return f.finish(m, fmt.Appendf(m.Buffer(), format, args...))
}

// Render expands format with args using the default formatter
func Render(format string, args ...interface{}) (*core.Message, error) {
	return defaultFormatter.RenderArgs(format, args)
}
