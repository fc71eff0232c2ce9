package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/multierr"

	"github.com/philipp01105/textlog/config"
	"github.com/philipp01105/textlog/core"
	"github.com/philipp01105/textlog/handler"
	"github.com/philipp01105/textlog/logger"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

const (
	kindInfo  = "info"
	kindError = "error"
	kindDebug = "debug"
)

type options struct {
	configFile           string
	backend              string
	output               string
	errorOutput          string
	secondaryErrorOutput string
	filter               int64
	filterSet            bool
	syslog               bool
	syslogTag            string
	kind                 string
	debugLevel           int
	identity             uint32
	identitySet          bool
	stats                bool
	message              []string
}

func (o *options) register(app *kingpin.Application) {
	app.Flag("config", "YAML configuration file.").Short('c').StringVar(&o.configFile)
	app.Flag("backend", "Delivery backend (none, zap, logrus).").StringVar(&o.backend)
	app.Flag("output", "Info stream: stdout, stderr or a file path.").StringVar(&o.output)
	app.Flag("error-output", "Error stream: stderr, stdout or a file path.").StringVar(&o.errorOutput)
	app.Flag("secondary-error-output", "Extra stream receiving every error message.").StringVar(&o.secondaryErrorOutput)
	app.Flag("filter", "Only emit debug messages from this identity.").IsSetByUser(&o.filterSet).Int64Var(&o.filter)
	app.Flag("syslog", "Send messages to the system log.").BoolVar(&o.syslog)
	app.Flag("syslog-tag", "Program name recorded in the system log.").Default("textlog").StringVar(&o.syslogTag)
	app.Flag("kind", "Message kind.").Short('k').Default(kindInfo).EnumVar(&o.kind, kindInfo, kindError, kindDebug)
	app.Flag("debug-level", "Level index of debug messages.").Default("1").IntVar(&o.debugLevel)
	app.Flag("identity", "Identity debug messages are sent as (default: calling thread).").IsSetByUser(&o.identitySet).Uint32Var(&o.identity)
	app.Flag("stats", "Print routing statistics to stderr on exit.").BoolVar(&o.stats)
	app.Arg("message", "Message to log. Lines are read from stdin when omitted.").StringsVar(&o.message)
}

// loadConfig returns the file configuration with the flags applied on top
func (o *options) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		cfg, err = config.LoadFile(o.configFile)
		if err != nil {
			return cfg, err
		}
	} else if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.errorOutput != "" {
		cfg.ErrorOutput = o.errorOutput
	}
	if o.secondaryErrorOutput != "" {
		cfg.SecondaryErrorOutput = o.secondaryErrorOutput
	}
	if o.filterSet {
		cfg.Filter = o.filter
	}
	if o.syslog {
		cfg.Syslog.Enabled = true
		cfg.Syslog.Tag = o.syslogTag
	}
	return cfg, nil
}

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("textlog", "Write messages through the textlog router.")
	app.Version(Version)
	opts := &options{}
	opts.register(app)

	if _, err := app.Parse(args[1:]); err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	log, err := cfg.BuildWriters(stdout, stderr)
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defer func() {
		if opts.stats {
			printStats(stderr, log.Stats())
		}
		err = multierr.Append(err, log.Close())
	}()

	emit := opts.emitter(log)
	if len(opts.message) > 0 {
		return emit(strings.Join(opts.message, " "))
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// emitter returns the function logging one line with the selected kind
func (o *options) emitter(log *logger.Logger) func(line string) error {
	switch o.kind {
	case kindError:
		return func(line string) error {
			_, err := log.Errorf("%s\n", line)
			return err
		}
	case kindDebug:
		level := logger.Level(o.debugLevel)
		return func(line string) error {
			args := []interface{}{line}
			if o.identitySet {
				log.Debugv(level, core.Identity(o.identity), "%s\n", args)
			} else {
				log.Debugv(level, core.CurrentIdentity(), "%s\n", args)
			}
			return nil
		}
	default:
		return func(line string) error {
			_, err := log.Infof("%s\n", line)
			return err
		}
	}
}

func printStats(w io.Writer, s handler.Snapshot) {
	fmt.Fprintf(w, "delivered: backend=%d syslog=%d stream=%d\n",
		s.Delivered[handler.DestinationBackend],
		s.Delivered[handler.DestinationSystemLog],
		s.Delivered[handler.DestinationLocalStream])
	fmt.Fprintf(w, "fallback=%d failed=%d filtered=%d\n", s.FallbackTotal, s.FailedTotal, s.FilteredTotal)
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
