// Package config loads hccheck settings from an optional YAML file and
// HCCHECK_* environment variables, on top of built-in defaults.
//
// Precedence, lowest first: Default(), the YAML file, the environment.
// Command-line flags are applied by the CLI after Load returns.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hccheck/tsplib"
)

// ErrInvalid marks a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full hccheck configuration.
type Config struct {
	// Verbose prints the validator's diagnostic lines. On by default, as the
	// checker has always reported why a tour fails.
	Verbose bool `yaml:"verbose"`

	// PrintPath prints each tour as a comma-separated node list.
	PrintPath bool `yaml:"print_path"`

	// StrictExit makes an invalid tour exit with status 2 instead of 0.
	StrictExit bool `yaml:"strict_exit"`

	// JSON replaces the text report with one JSON object per tour.
	JSON bool `yaml:"json"`

	// MaxDimension caps DIMENSION in both file kinds.
	MaxDimension int `yaml:"max_dimension"`

	// Workers bounds concurrent tour validations; 0 means one per CPU.
	Workers int `yaml:"workers"`

	Log   LogConfig   `yaml:"log"`
	Watch WatchConfig `yaml:"watch"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// WatchConfig tunes --watch.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Verbose:      true,
		MaxDimension: tsplib.DefaultMaxDimension,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Load returns Default() overlaid with the YAML file at path (skipped when
// path is empty) and the environment. A named file that does not exist is
// an error. The result is not validated: callers apply their own overrides
// first and then call Validate once.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAMLFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := applyEnvironment(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnvironment overrides cfg from HCCHECK_* variables. lookup is
// os.LookupEnv outside tests.
func applyEnvironment(cfg *Config, lookup func(string) (string, bool)) error {
	var errs error
	boolVar := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s=%q: %w", key, v, ErrInvalid))
				return
			}
			*dst = b
		}
	}
	boolVar("HCCHECK_VERBOSE", &cfg.Verbose)
	boolVar("HCCHECK_PRINT_PATH", &cfg.PrintPath)
	boolVar("HCCHECK_STRICT_EXIT", &cfg.StrictExit)
	boolVar("HCCHECK_JSON", &cfg.JSON)

	if v, ok := lookup("HCCHECK_MAX_DIMENSION"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("HCCHECK_MAX_DIMENSION=%q: %w", v, ErrInvalid))
		} else {
			cfg.MaxDimension = n
		}
	}
	if v, ok := lookup("HCCHECK_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("HCCHECK_WORKERS=%q: %w", v, ErrInvalid))
		} else {
			cfg.Workers = n
		}
	}
	if v, ok := lookup("HCCHECK_WATCH_DEBOUNCE"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("HCCHECK_WATCH_DEBOUNCE=%q: %w", v, ErrInvalid))
		} else {
			cfg.Watch.Debounce = d
		}
	}
	if v, ok := lookup("HCCHECK_LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("HCCHECK_LOG_FORMAT"); ok && v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}

	return errs
}

// Validate reports every out-of-domain field at once.
func (c *Config) Validate() error {
	var errs error
	if c.MaxDimension <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("max_dimension %d must be positive: %w", c.MaxDimension, ErrInvalid))
	}
	if c.Workers < 0 {
		errs = multierror.Append(errs, fmt.Errorf("workers %d must not be negative: %w", c.Workers, ErrInvalid))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = multierror.Append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = multierror.Append(errs, fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid))
	}
	if c.Watch.Debounce < 0 {
		errs = multierror.Append(errs, fmt.Errorf("watch.debounce %s: %w", c.Watch.Debounce, ErrInvalid))
	}

	return errs
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", s, ErrInvalid)
	}

	return lvl, nil
}

// NewLogger builds the slog logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch c.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log.format %q: %w", c.Format, ErrInvalid)
	}
}
