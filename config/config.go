package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/textlog/core"
)

// FilterEnv names the environment variable overriding Config.Filter
const FilterEnv = "TEXTLOG_FILTER"

// Backend names
const (
	BackendNone   = "none"
	BackendZap    = "zap"
	BackendLogrus = "logrus"
)

// Stream names. Any other value is a file path.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// Config represents the YAML structure for logger configuration.
type Config struct {
	Backend              string       `yaml:"backend"`
	Syslog               SyslogConfig `yaml:"syslog"`
	Output               string       `yaml:"output"`
	ErrorOutput          string       `yaml:"error_output"`
	SecondaryErrorOutput string       `yaml:"secondary_error_output"`
	// Filter is the debug filter identity. Negative means unset.
	Filter      int64    `yaml:"filter"`
	InitialSize int      `yaml:"initial_size"`
	MaxSize     int      `yaml:"max_size"`
	Levels      []string `yaml:"levels"`
}

// SyslogConfig represents the YAML structure for system log configuration.
type SyslogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Tag     string `yaml:"tag"`
	Network string `yaml:"network"`
	Address string `yaml:"address"`
}

// Default returns the configuration used when nothing is set: local
// streams only, no filter.
func Default() Config {
	return Config{
		Backend:     BackendNone,
		Output:      StreamStdout,
		ErrorOutput: StreamStderr,
		Filter:      -1,
	}
}

// Load reads path from fsys on top of Default, applies the environment
// and validates the result.
func Load(fsys fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}

	return load(data)
}

// LoadFile is Load on the OS filesystem
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	return load(data)
}

func load(data []byte) (Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Parse decodes YAML data on top of Default without validating it
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing YAML")
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment using lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	v, ok := lookup(FilterEnv)
	if !ok || v == "" {
		return nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid %s value %q", FilterEnv, v)
	}
	c.Filter = id
	return nil
}

// Validate checks the configuration
func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendNone, BackendZap, BackendLogrus:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}

	if c.Filter >= int64(core.NoFilter) {
		return errors.Errorf("filter %d out of range", c.Filter)
	}
	if c.InitialSize < 0 {
		return errors.New("initial_size must not be negative")
	}
	if c.MaxSize < 0 {
		return errors.New("max_size must not be negative")
	}
	if c.MaxSize > 0 && c.InitialSize > c.MaxSize {
		return errors.New("initial_size must not exceed max_size")
	}
	return nil
}
