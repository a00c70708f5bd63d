package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/countdown/pkg/countdown"
)

// Config defines configuration for the countdown CLI.
type Config struct {
	Interval time.Duration
	LogLevel string
	EventLog string
	Messages countdown.Messages
}

// Default returns a Config with the stock behavior.
func Default() Config {
	return Config{
		Interval: countdown.DefaultInterval,
		LogLevel: "warn",
		Messages: countdown.DefaultMessages(),
	}
}

// yamlConfig is used for YAML unmarshaling with a string interval.
type yamlConfig struct {
	Interval string       `yaml:"interval"`
	LogLevel string       `yaml:"log_level"`
	EventLog string       `yaml:"event_log"`
	Messages yamlMessages `yaml:"messages"`
}

type yamlMessages struct {
	Banner    string `yaml:"banner"`
	Prompt    string `yaml:"prompt"`
	Remaining string `yaml:"remaining"`
	Invalid   string `yaml:"invalid"`
	Done      string `yaml:"done"`
}

// LoadFromFile loads configuration from a YAML file on top of Default.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Interval != "" {
		d, err := time.ParseDuration(yc.Interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse interval: %w", err)
		}
		cfg.Interval = d
	}
	if yc.LogLevel != "" {
		cfg.LogLevel = yc.LogLevel
	}
	if yc.EventLog != "" {
		cfg.EventLog = yc.EventLog
	}
	cfg.Messages = countdown.Messages{
		Banner:    yc.Messages.Banner,
		Prompt:    yc.Messages.Prompt,
		Remaining: yc.Messages.Remaining,
		Invalid:   yc.Messages.Invalid,
		Done:      yc.Messages.Done,
	}.WithDefaults()

	return cfg, nil
}

// LoadFromEnv overrides c from environment variables.
// Environment variables use the COUNTDOWN_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("COUNTDOWN_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse COUNTDOWN_INTERVAL: %w", err)
		}
		c.Interval = d
	}
	if v := os.Getenv("COUNTDOWN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("COUNTDOWN_EVENT_LOG"); v != "" {
		c.EventLog = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Interval < 0 {
		return errors.New("config: interval must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := countdown.ValidateRemainingFormat(c.Messages.Remaining); err != nil {
		return fmt.Errorf("config: messages.remaining: %w", err)
	}
	return nil
}

// ParseLevel parses a log level name: debug, info, warn or error, in any
// letter case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", s)
}
