// Package config loads the settings of the jpholiday command.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// variables from a .env file, then the process environment. Command-line
// flags are applied last by the caller.
//
// Timeouts, whether from http_timeout or JPHOLIDAY_HTTP_TIMEOUT, are either a
// whole number of seconds ("30") or a Go duration ("1m30s").
package config

import (
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/rabitt1ove/jholiday/internal/log"
	"github.com/rabitt1ove/jholiday/internal/render"
)

// Environment variables read by Load.
const (
	EnvLanguage = "JPHOLIDAY_LANG"
	EnvFormat   = "JPHOLIDAY_FORMAT"
	EnvLogLevel = "JPHOLIDAY_LOG_LEVEL"
	EnvCSVURL   = "JPHOLIDAY_CSV_URL"
	EnvTimeout  = "JPHOLIDAY_HTTP_TIMEOUT"
	EnvWorkers  = "JPHOLIDAY_WORKERS"
)

// Config holds the resolved settings of one command invocation.
type Config struct {
	Language language.Tag
	Format   render.Format
	LogLevel log.Level
	// CSVURL pins the official holiday CSV instead of resolving it through
	// the data portal.
	CSVURL string
	// Timeout bounds each HTTP request of the check command.
	Timeout time.Duration
	// Workers is the number of years compared concurrently by check.
	Workers int
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Language: language.Japanese,
		Format:   render.Text,
		LogLevel: log.INFO,
		Timeout:  30 * time.Second,
		Workers:  4,
	}
}

// Load builds the configuration. path names an optional YAML file and
// envFile an optional .env file; either may be empty. A missing .env file is
// not an error.
func Load(path, envFile string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := c.Parse(data); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "load %s", envFile)
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "environment")
	}
	return c, nil
}

// Parse overlays the YAML document data onto c.
func (c *Config) Parse(data []byte) error {
	var aux struct {
		Language string `yaml:"language"`
		Format   string `yaml:"format"`
		LogLevel string `yaml:"log_level"`
		CSVURL   string `yaml:"csv_url"`
		Timeout  string `yaml:"http_timeout"`
		Workers  int    `yaml:"workers"`
	}
	if err := yaml.UnmarshalStrict(data, &aux); err != nil {
		return err
	}

	if aux.Language != "" {
		if err := c.SetLanguage(aux.Language); err != nil {
			return err
		}
	}
	if aux.Format != "" {
		if err := c.SetFormat(aux.Format); err != nil {
			return err
		}
	}
	if aux.LogLevel != "" {
		if err := c.SetLogLevel(aux.LogLevel); err != nil {
			return err
		}
	}
	if aux.CSVURL != "" {
		c.CSVURL = aux.CSVURL
	}
	if aux.Timeout != "" {
		d, err := parseTimeout(aux.Timeout)
		if err != nil {
			return errors.Wrap(err, "http_timeout")
		}
		c.Timeout = d
	}
	if aux.Workers < 0 {
		return errors.Errorf("workers must be positive, got %d", aux.Workers)
	}
	if aux.Workers > 0 {
		c.Workers = aux.Workers
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := getEnv(EnvLanguage, ""); v != "" {
		if err := c.SetLanguage(v); err != nil {
			return err
		}
	}
	if v := getEnv(EnvFormat, ""); v != "" {
		if err := c.SetFormat(v); err != nil {
			return err
		}
	}
	if v := getEnv(EnvLogLevel, ""); v != "" {
		if err := c.SetLogLevel(v); err != nil {
			return err
		}
	}
	c.CSVURL = getEnv(EnvCSVURL, c.CSVURL)
	if v := getEnv(EnvTimeout, ""); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return errors.Wrap(err, EnvTimeout)
		}
		c.Timeout = d
	}
	if v := getEnv(EnvWorkers, ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return errors.Errorf("%s: invalid worker count %q", EnvWorkers, v)
		}
		c.Workers = n
	}
	return nil
}

// SetLanguage parses a BCP 47 tag such as "en" or "ja-JP".
func (c *Config) SetLanguage(s string) error {
	tag, err := language.Parse(s)
	if err != nil {
		return errors.Wrapf(err, "invalid language %q", s)
	}
	c.Language = tag
	return nil
}

// SetFormat selects the output format by name.
func (c *Config) SetFormat(s string) error {
	f, err := render.ParseFormat(s)
	if err != nil {
		return err
	}
	c.Format = f
	return nil
}

// SetLogLevel parses a level name such as "debug" or "WARN".
func (c *Config) SetLogLevel(s string) error {
	l, err := log.ParseLevel(s)
	if err != nil {
		return err
	}
	c.LogLevel = l
	return nil
}

// parseTimeout accepts whole seconds or a Go duration. The result is positive.
func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		n, nerr := strconv.Atoi(s)
		if nerr != nil {
			return 0, errors.Errorf("invalid timeout %q", s)
		}
		d = time.Duration(n) * time.Second
	}
	if d <= 0 {
		return 0, errors.Errorf("timeout must be positive, got %q", s)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
