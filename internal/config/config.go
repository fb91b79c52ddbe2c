// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"margin-suggest/core/types"
	apperrors "margin-suggest/internal/errors"
	"margin-suggest/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains suggestion engine configuration
	Engine EngineConfig `json:"engine"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP service configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig contains engine settings
type EngineConfig struct {
	// CatalogPath points at an HCL, JSON or YAML catalog override. Empty uses the built-in tables.
	CatalogPath string `json:"catalog_path,omitempty"`

	// DefaultCurrency applies to products without a currency
	DefaultCurrency types.Currency `json:"default_currency"`

	// Seed makes the simulated competitor sample reproducible. Zero means system randomness.
	Seed uint64 `json:"seed,omitempty"`

	// FixedTime pins the clock (RFC3339). Empty means wall clock.
	FixedTime string `json:"fixed_time,omitempty"`

	// BatchWorkers bounds SuggestBatch parallelism
	BatchWorkers int `json:"batch_workers"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails prints every strategy, tier and ending
	ShowDetails bool `json:"show_details"`

	// NoColor disables ANSI colors in CLI output
	NoColor bool `json:"no_color"`
}

// ServerConfig contains HTTP service settings
type ServerConfig struct {
	Address       string        `json:"address"`
	ReadTimeout   time.Duration `json:"read_timeout"`
	WriteTimeout  time.Duration `json:"write_timeout"`
	MaxBodySize   int64         `json:"max_body_size"`
	EnableMetrics bool          `json:"enable_metrics"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			DefaultCurrency: types.CurrencyUSD,
			BatchWorkers:    4,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Server: ServerConfig{
			Address:       ":8080",
			ReadTimeout:   15 * time.Second,
			WriteTimeout:  30 * time.Second,
			MaxBodySize:   1 << 20,
			EnableMetrics: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// ServerDefault is Default with the HTTP service's logging defaults
func ServerDefault() *Config {
	cfg := Default()
	cfg.Logging = logging.ServiceConfig()
	return cfg
}

// Load loads configuration from a file over Default(). A missing file yields the defaults.
func Load(path string) (*Config, error) {
	return LoadFrom(path, Default())
}

// LoadFrom loads configuration from a file over base. Fields absent from the file
// keep base's values; a missing file yields a copy of base. base is not modified.
func LoadFrom(path string, base *Config) (*Config, error) {
	copied := *base
	cfg := &copied

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, apperrors.Config("read config", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.Config("parse config "+path, err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnv reads envFile (if present) into the process environment and applies
// MARGIN_* overrides on top of c.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return apperrors.Config("load env file "+envFile, err)
		}
	}
	return c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("MARGIN_CATALOG_PATH"); v != "" {
		c.Engine.CatalogPath = v
	}
	if v := getenv("MARGIN_DEFAULT_CURRENCY"); v != "" {
		c.Engine.DefaultCurrency = types.Currency(v)
	}
	if v := getenv("MARGIN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return apperrors.Config("MARGIN_SEED", err)
		}
		c.Engine.Seed = seed
	}
	if v := getenv("MARGIN_FIXED_TIME"); v != "" {
		c.Engine.FixedTime = v
	}
	if v := getenv("MARGIN_BATCH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return apperrors.Config("MARGIN_BATCH_WORKERS", err)
		}
		c.Engine.BatchWorkers = n
	}
	if v := getenv("MARGIN_SERVER_ADDRESS"); v != "" {
		c.Server.Address = v
	}
	if v := getenv("MARGIN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("MARGIN_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// FixedTimeValue parses Engine.FixedTime. ok is false when no fixed time is set.
func (c *Config) FixedTimeValue() (t time.Time, ok bool, err error) {
	if c.Engine.FixedTime == "" {
		return time.Time{}, false, nil
	}
	t, err = time.Parse(time.RFC3339, c.Engine.FixedTime)
	if err != nil {
		return time.Time{}, false, apperrors.Config("engine.fixed_time", err)
	}
	return t, true, nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
