package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"TVRelay/pkg/util"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Payload extraction modes.
const (
	ModeStructured = "structured"
	ModeRaw        = "raw"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Relay struct {
		Mode      string `yaml:"mode" default:"structured"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"relay"`
	Discord struct {
		WebhookURL string        `yaml:"webhook_url"`
		Timeout    time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"discord"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Fill zero-valued fields from default tags
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		c.Discord.WebhookURL = v
	}
	if v := os.Getenv("WEBHOOK_SECRET_KEY"); v != "" {
		c.Relay.SecretKey = v
	}
	if v := os.Getenv("RELAY_MODE"); v != "" {
		c.Relay.Mode = strings.ToLower(v)
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Relay.Mode != ModeStructured && c.Relay.Mode != ModeRaw {
		return fmt.Errorf("relay.mode must be '%s' or '%s', got '%s'", ModeStructured, ModeRaw, c.Relay.Mode)
	}
	if c.Discord.Timeout <= 0 {
		return fmt.Errorf("discord.timeout must be positive")
	}
	if url := c.Discord.WebhookURL; url != "" &&
		!strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("discord.webhook_url must be an http(s) URL")
	}
	return nil
}

// Degraded reports whether the service lacks a webhook URL and can only
// answer /webhook with a configuration error.
func (c *Config) Degraded() bool {
	return c.Discord.WebhookURL == ""
}
