package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/philipp01105/textlog/core"
	"github.com/philipp01105/textlog/formatter"
	"github.com/philipp01105/textlog/handler"
	"github.com/philipp01105/textlog/handler/consolehandler"
	"github.com/philipp01105/textlog/handler/logrusbackend"
	"github.com/philipp01105/textlog/handler/sysloghandler"
	"github.com/philipp01105/textlog/handler/zapbackend"
	"github.com/philipp01105/textlog/logger"
)

// streamSet opens each named stream once so that output and
// error_output naming the same file share one stream.
type streamSet struct {
	stdout  io.Writer
	stderr  io.Writer
	streams map[string]handler.Stream
	closers []io.Closer
}

func (s *streamSet) open(name string) (handler.Stream, error) {
	if st, ok := s.streams[name]; ok {
		return st, nil
	}

	var st handler.Stream
	switch name {
	case StreamStdout:
		st = consolehandler.NewConsoleStream(consolehandler.ConsoleConfig{Writer: s.stdout})
	case StreamStderr:
		st = consolehandler.NewConsoleStream(consolehandler.ConsoleConfig{
			Writer:    s.stderr,
			Buffering: consolehandler.BufferNone,
		})
	default:
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %s", name)
		}
		cs := consolehandler.NewConsoleStream(consolehandler.ConsoleConfig{Writer: f})
		// the stream flushes before the file closes
		s.closers = append(s.closers, cs, f)
		st = cs
	}
	s.streams[name] = st
	return st, nil
}

func (s *streamSet) close() error {
	var err error
	for _, c := range s.closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}

// Build creates a Logger from the configuration. Resources it opens
// are released by the Logger's Close.
func (c Config) Build() (*logger.Logger, error) {
	return c.BuildWriters(os.Stdout, os.Stderr)
}

// BuildWriters is Build with the writers standing in for stdout and
// stderr
func (c Config) BuildWriters(stdout, stderr io.Writer) (*logger.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	streams := &streamSet{
		stdout:  stdout,
		stderr:  stderr,
		streams: map[string]handler.Stream{},
	}
	b, err := c.builder(streams)
	if err != nil {
		return nil, multierr.Append(err, streams.close())
	}
	for _, cl := range streams.closers {
		b.WithCloser(cl)
	}
	return b.Build(), nil
}

func (c Config) builder(streams *streamSet) (*logger.Builder, error) {
	b := logger.NewBuilder().WithFormatter(formatter.Config{
		InitialSize: c.InitialSize,
		MaxSize:     c.MaxSize,
	})

	output, err := streams.open(orDefault(c.Output, StreamStdout))
	if err != nil {
		return nil, err
	}
	errOutput, err := streams.open(orDefault(c.ErrorOutput, StreamStderr))
	if err != nil {
		return nil, err
	}
	b.WithOutput(output).WithErrorOutput(errOutput)

	if c.SecondaryErrorOutput != "" {
		secondary, err := streams.open(c.SecondaryErrorOutput)
		if err != nil {
			return nil, err
		}
		b.WithSecondaryErrorOutput(secondary)
	}

	if c.Filter >= 0 {
		b.WithFilter(core.Identity(c.Filter))
	}
	if len(c.Levels) > 0 {
		b.WithLevels(core.NewLevelTable(c.Levels...))
	}

	switch c.Backend {
	case BackendZap:
		backend, err := zapbackend.NewProduction()
		if err != nil {
			return nil, errors.Wrap(err, "could not create zap backend")
		}
		b.WithBackend(backend)
	case BackendLogrus:
		b.WithBackend(logrusbackend.New(logrus.New()))
	}

	if c.Syslog.Enabled {
		sys, err := sysloghandler.New(sysloghandler.Config{
			Tag:     c.Syslog.Tag,
			Network: c.Syslog.Network,
			Address: c.Syslog.Address,
		})
		if err != nil {
			return nil, err
		}
		b.WithSystemLog(sys)
	}

	return b, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
