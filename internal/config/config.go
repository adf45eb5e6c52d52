// Package config loads the pets CLI configuration: a YAML file under
// ~/.pets, environment overrides, and defaults for everything else.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file or a field is absent.
const (
	DefaultPageSize = 20
	DefaultOutput   = "table"
)

// Environment variables recognized as overrides. They beat the config file
// and lose to explicit CLI flags.
const (
	EnvEndpoint  = "PETS_ENDPOINT"
	EnvPageSize  = "PETS_PAGE_SIZE"
	EnvLogLevel  = "PETS_LOG_LEVEL"
	EnvLogFormat = "PETS_LOG_FORMAT"
)

// Config is the full CLI configuration.
type Config struct {
	// Endpoint is the animal listing URL. Empty selects the built-in default.
	Endpoint string `yaml:"endpoint"`

	// PageSize is the number of animals per page.
	PageSize int `yaml:"page_size"`

	// Output is the default output format for non-interactive commands:
	// "table", "json", or "yaml".
	Output string `yaml:"output"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// globalConfig holds the configuration resolved at startup for the lifetime
// of one CLI invocation.
var (
	globalConfig   *Config      //nolint:gochecknoglobals // Set once at startup, read by commands.
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig.
)

// SetGlobal stores the resolved configuration for this invocation.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobal returns the configuration stored by SetGlobal, or a default
// configuration when none has been resolved yet.
func GetGlobal() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return Default()
	}
	return globalConfig
}

// Default returns a Config with all defaults applied and no file or
// environment input.
func Default() *Config {
	return &Config{
		PageSize: DefaultPageSize,
		Output:   DefaultOutput,
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath returns the default config file location, ~/.pets/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".pets", "config.yaml"), nil
}

// Load resolves the configuration from the file at path (missing file is not
// an error) and then applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config file means defaults.
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that have a bounded domain.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1, got %d", c.PageSize)
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("output must be table, json, or yaml, got %q", c.Output)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

func (c *Config) applyDefaults() {
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}
