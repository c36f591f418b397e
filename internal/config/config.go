package config

import (
	"fmt"
	"time"

	"github.com/joacominatel/ducklogs/internal/backend"
)

// Config represents the application configuration.
type Config struct {
	APIBase  string        `mapstructure:"api_base" yaml:"api_base"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Language string        `mapstructure:"language" yaml:"language"`
	LogFile  string        `mapstructure:"log_file" yaml:"log_file"`
	Debug    bool          `mapstructure:"debug" yaml:"debug"`
	Defaults Defaults      `mapstructure:"defaults" yaml:"defaults"`

	// Path is the file the configuration was read from, or would be written to.
	Path string `mapstructure:"-" yaml:"-"`
}

// Defaults holds the initial values of the form fields.
type Defaults struct {
	Region   string `mapstructure:"region" yaml:"region"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	URI      string `mapstructure:"uri" yaml:"uri"`
	Format   string `mapstructure:"format" yaml:"format"`
	Limit    int    `mapstructure:"limit" yaml:"limit"`
	SQL      string `mapstructure:"sql" yaml:"sql"`
}

// Validate checks values the views cannot recover from.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api_base must not be empty")
	}
	if _, err := backend.ParseFormat(c.Defaults.Format); err != nil {
		return fmt.Errorf("defaults.format: %w", err)
	}
	if c.Defaults.Limit < 0 {
		return fmt.Errorf("defaults.limit must not be negative, got %d", c.Defaults.Limit)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// DefaultFormat returns the configured default format, or parquet.
func (c *Config) DefaultFormat() backend.Format {
	f, err := backend.ParseFormat(c.Defaults.Format)
	if err != nil {
		return backend.FormatParquet
	}
	return f
}
