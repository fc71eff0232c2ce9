package handler

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/philipp01105/textlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Router.
// Records at slog.LevelError and above are routed as error messages, all
// others as info messages. Attributes are appended to the message text as
// key=value pairs.
type SlogHandler struct {
	router *Router
	level  slog.Leveler
	attrs  []byte
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter routing through r.
func NewSlogHandler(r *Router, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SlogHandler{
		router: r,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle renders the record into one message and routes it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	m := core.NewMessage(len(record.Message) + len(s.attrs) + 64)
	buf := append(m.Buffer(), record.Message...)
	buf = append(buf, s.attrs...)

	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, s.group, a)
		return true
	})
	buf = append(buf, '\n')
	m.SetBuffer(buf)

	var err error
	if record.Level >= slog.LevelError {
		_, err = s.router.Error(m)
	} else {
		_, err = s.router.Info(m)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]byte, len(s.attrs), len(s.attrs)+16*len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		router: s.router,
		level:  s.level,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		router: s.router,
		level:  s.level,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// appendAttr appends " key=value" to buf, prepending the group prefix if present.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		// Groups become prefixed keys
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, key, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, key...)
	buf = append(buf, '=')

	switch a.Value.Kind() {
	case slog.KindString:
		buf = append(buf, a.Value.String()...)
	case slog.KindInt64:
		buf = strconv.AppendInt(buf, a.Value.Int64(), 10)
	case slog.KindUint64:
		buf = strconv.AppendUint(buf, a.Value.Uint64(), 10)
	case slog.KindFloat64:
		buf = strconv.AppendFloat(buf, a.Value.Float64(), 'f', -1, 64)
	case slog.KindBool:
		buf = strconv.AppendBool(buf, a.Value.Bool())
	case slog.KindTime:
		buf = a.Value.Time().AppendFormat(buf, time.RFC3339)
	case slog.KindDuration:
		buf = append(buf, a.Value.Duration().String()...)
	default:
		buf = append(buf, a.Value.String()...)
	}
	return buf
}
