package handler

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/textlog/core"
)

func msg(s string) *core.Message {
	return core.MessageFromBytes([]byte(s))
}

func TestRouterInfo(t *testing.T) {
	tests := map[string]struct {
		backend      *fakeBackend
		syslog       *fakeSyslog
		message      *core.Message
		expN         int
		expErr       error
		expStream    string
		expRecords   []string
		expBackend   int
		expFallbacks uint64
	}{
		"A nil message should be a no-op.": {
			backend: &fakeBackend{result: Delivered(3)},
			syslog:  &fakeSyslog{},
			message: nil,
			expN:    0,
		},
		"Without backend or syslog the local stream should get the message.": {
			message:   msg("short"),
			expN:      5,
			expStream: "short",
		},
		"A delivering backend should end routing with its count.": {
			backend:    &fakeBackend{result: Delivered(2)},
			syslog:     &fakeSyslog{},
			message:    msg("hello"),
			expN:       2,
			expBackend: 1,
		},
		"A zero-length backend delivery is not unavailability.": {
			backend:    &fakeBackend{result: Delivered(0)},
			message:    msg("hello"),
			expN:       0,
			expBackend: 1,
		},
		"An unavailable backend should fall back to syslog.": {
			backend:      &fakeBackend{result: Unavailable()},
			syslog:       &fakeSyslog{},
			message:      msg("fallback"),
			expN:         8,
			expRecords:   []string{"fallback"},
			expBackend:   1,
			expFallbacks: 1,
		},
		"An unavailable backend without syslog should fall back to the stream.": {
			backend:      &fakeBackend{result: Unavailable()},
			message:      msg("to stream"),
			expN:         9,
			expStream:    "to stream",
			expBackend:   1,
			expFallbacks: 1,
		},
		"A failed backend should not fall back.": {
			backend:    &fakeBackend{result: Failed(errBoom)},
			syslog:     &fakeSyslog{},
			message:    msg("lost"),
			expN:       0,
			expErr:     errBoom,
			expBackend: 1,
		},
		"Syslog mode should report the rendered length even if the record fails.": {
			syslog:     &fakeSyslog{err: errBoom},
			message:    msg("recorded"),
			expN:       8,
			expRecords: []string{"recorded"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			stream := &fakeStream{}
			cfg := RouterConfig{Output: stream, ErrorOutput: &fakeStream{}}
			if test.backend != nil {
				cfg.Backend = test.backend
			}
			if test.syslog != nil {
				cfg.SystemLog = test.syslog
			}
			r := NewRouter(cfg)

			n, err := r.Info(test.message)
			assert.ErrorIs(err, test.expErr)
			if test.expErr == nil {
				assert.NoError(err)
			}
			assert.Equal(test.expN, n)
			assert.Equal(test.expStream, stream.String())
			if test.syslog != nil {
				assert.Equal(test.expRecords, test.syslog.records)
			}
			if test.backend != nil {
				assert.Len(test.backend.sent, test.expBackend)
				for _, sev := range test.backend.sevs {
					assert.Equal(core.SeverityInfo, sev)
				}
			}
			assert.Equal(test.expFallbacks, r.Stats().FallbackTotal)
		})
	}
}

func TestRouterErrorDoubleWrite(t *testing.T) {
	t.Run("A distinct secondary error stream is written first, then the error stream.", func(t *testing.T) {
		var order []string
		primary := &orderStream{name: "primary", order: &order}
		secondary := &orderStream{name: "secondary", order: &order}

		r := NewRouter(RouterConfig{ErrorOutput: primary, SecondaryErrorOutput: secondary})
		n, err := r.Error(msg("bad thing"))

		require.NoError(t, err)
		assert.Equal(t, 9, n)
		assert.Equal(t, []string{"secondary", "primary"}, order)
	})

	t.Run("The reported result is the last write.", func(t *testing.T) {
		primary := &fakeStream{writeErr: errBoom, short: 3}
		secondary := &fakeStream{}

		r := NewRouter(RouterConfig{ErrorOutput: primary, SecondaryErrorOutput: secondary})
		n, err := r.Error(msg("bad thing"))

		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 3, n)
		assert.Equal(t, "bad thing", secondary.String())
	})

	t.Run("The same stream configured twice is written once.", func(t *testing.T) {
		s := &fakeStream{}

		r := NewRouter(RouterConfig{ErrorOutput: s, SecondaryErrorOutput: s})
		_, err := r.Error(msg("once"))

		require.NoError(t, err)
		assert.Equal(t, 1, s.writes)
		assert.Equal(t, "once", s.String())
	})

	t.Run("Error messages never reach the info stream.", func(t *testing.T) {
		out, errOut := &fakeStream{}, &fakeStream{}

		r := NewRouter(RouterConfig{Output: out, ErrorOutput: errOut})
		_, err := r.Error(msg("err"))

		require.NoError(t, err)
		assert.Empty(t, out.String())
		assert.Equal(t, "err", errOut.String())
	})
}

func TestRouterErrorBackendAndSyslog(t *testing.T) {
	b := &fakeBackend{result: Unavailable()}
	sl := &fakeSyslog{}
	errOut := &fakeStream{}

	r := NewRouter(RouterConfig{Backend: b, SystemLog: sl, ErrorOutput: errOut})
	n, err := r.Error(msg("disk failed"))

	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, []core.Severity{core.SeverityError}, b.sevs)
	// There is no distinct error priority.
	assert.Equal(t, []Priority{PriorityInfo}, sl.priority)
	assert.Empty(t, errOut.String())
}

func TestRouterStreamError(t *testing.T) {
	out := &fakeStream{writeErr: errBoom}
	r := NewRouter(RouterConfig{Output: out})

	_, err := r.Info(msg("x"))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, uint64(1), r.Stats().FailedTotal)
	assert.Equal(t, uint64(0), r.Stats().Delivered[DestinationLocalStream])
}

func TestRouterFlush(t *testing.T) {
	tests := map[string]struct {
		cfg        func(out *fakeStream) RouterConfig
		expErr     error
		expFlushes int
	}{
		"Stream mode should flush the output stream and propagate its error.": {
			cfg: func(out *fakeStream) RouterConfig {
				out.flushErr = errBoom
				return RouterConfig{Output: out}
			},
			expErr:     errBoom,
			expFlushes: 1,
		},
		"Backend mode should not flush.": {
			cfg: func(out *fakeStream) RouterConfig {
				out.flushErr = errBoom
				return RouterConfig{Output: out, Backend: &fakeBackend{}}
			},
		},
		"Syslog mode should not flush.": {
			cfg: func(out *fakeStream) RouterConfig {
				out.flushErr = errBoom
				return RouterConfig{Output: out, SystemLog: &fakeSyslog{}}
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out := &fakeStream{}
			r := NewRouter(test.cfg(out))

			err := r.Flush()
			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expFlushes, out.flushes)
		})
	}
}

func TestRouterFlushStreams(t *testing.T) {
	tests := map[string]struct {
		cfg func(out, errOut, secondary *fakeStream) RouterConfig
	}{
		"Stream mode should flush every stream.": {
			cfg: func(out, errOut, secondary *fakeStream) RouterConfig {
				return RouterConfig{Output: out, ErrorOutput: errOut, SecondaryErrorOutput: secondary}
			},
		},
		"Backend mode should flush every stream.": {
			cfg: func(out, errOut, secondary *fakeStream) RouterConfig {
				return RouterConfig{Output: out, ErrorOutput: errOut, SecondaryErrorOutput: secondary, Backend: &fakeBackend{}}
			},
		},
		"Syslog mode should flush every stream.": {
			cfg: func(out, errOut, secondary *fakeStream) RouterConfig {
				return RouterConfig{Output: out, ErrorOutput: errOut, SecondaryErrorOutput: secondary, SystemLog: &fakeSyslog{}}
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out, errOut, secondary := &fakeStream{}, &fakeStream{}, &fakeStream{}
			r := NewRouter(test.cfg(out, errOut, secondary))

			require.NoError(t, r.FlushStreams())
			assert.Equal(t, 1, out.flushes)
			assert.Equal(t, 1, errOut.flushes)
			assert.Equal(t, 1, secondary.flushes)
		})
	}
}

func TestRouterFlushStreamsErrors(t *testing.T) {
	out := &fakeStream{flushErr: errBoom}
	errOut := &fakeStream{flushErr: errBoom}
	r := NewRouter(RouterConfig{Output: out, ErrorOutput: errOut, Backend: &fakeBackend{}})

	err := r.FlushStreams()
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, out.flushes)
	assert.Equal(t, 1, errOut.flushes)
}

func TestRouterConcurrent(t *testing.T) {
	out := &fakeStream{}
	r := NewRouter(RouterConfig{Output: out})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = r.Info(msg("line\n"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1600, strings.Count(out.String(), "line\n"))
	assert.Equal(t, uint64(1600), r.Stats().Delivered[DestinationLocalStream])
}

type orderStream struct {
	name  string
	order *[]string
}

func (s *orderStream) Write(p []byte) (int, error) {
	*s.order = append(*s.order, s.name)
	return len(p), nil
}

func (s *orderStream) Flush() error { return nil }
