// Package config assembles process settings from defaults, an optional YAML
// file and the environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "fplgenius.yaml"

type Config struct {
	Port            int           `yaml:"port"`
	FPLBaseURL      string        `yaml:"fpl_base_url"`
	FPLTimeout      time.Duration `yaml:"fpl_timeout"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	DisplayTimezone string        `yaml:"display_timezone"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	Revalidate      Revalidate    `yaml:"revalidate"`
}

// Revalidate is how long each listing page may reuse upstream data.
type Revalidate struct {
	Players   time.Duration `yaml:"players"`
	Teams     time.Duration `yaml:"teams"`
	Fixtures  time.Duration `yaml:"fixtures"`
	Gameweeks time.Duration `yaml:"gameweeks"`
}

func Default() *Config {
	return &Config{
		Port:            3000,
		FPLBaseURL:      "https://fantasy.premierleague.com/api",
		FPLTimeout:      30 * time.Second,
		LogLevel:        "info",
		LogFormat:       "console",
		DisplayTimezone: "Europe/London",
		RefreshInterval: 5 * time.Minute,
		RequestTimeout:  10 * time.Second,
		Revalidate: Revalidate{
			Players:   60 * time.Second,
			Teams:     60 * time.Second,
			Fixtures:  300 * time.Second,
			Gameweeks: 300 * time.Second,
		},
	}
}

// Load reads .env (if present) into the environment, then builds the config.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = DefaultConfigFile
	}
	return LoadFrom(path, os.LookupEnv)
}

// LoadFrom builds the config from the YAML file at path (a missing file is
// not an error) and the variables returned by lookup.
func LoadFrom(path string, lookup func(string) (string, bool)) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := c.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", key, err)
		}
		*dst = d
		return nil
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("error parsing port number: %w", err)
		}
		c.Port = p
	}
	str("FPL_BASE_URL", &c.FPLBaseURL)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("DISPLAY_TIMEZONE", &c.DisplayTimezone)

	for key, dst := range map[string]*time.Duration{
		"FPL_TIMEOUT":      &c.FPLTimeout,
		"REFRESH_INTERVAL": &c.RefreshInterval,
		"REQUEST_TIMEOUT":  &c.RequestTimeout,
	} {
		if err := dur(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got: %v", c.RequestTimeout)
	}
	return nil
}

// Location is the time zone deadlines are shown in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("error loading display timezone %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}
