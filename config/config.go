// SPDX-License-Identifier: MIT
// Package: regcolor/config

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/regcolor/igraph"
)

// ErrInvalidConfig indicates a configuration value outside its range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config manages run configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("graph.nodes", igraph.DefaultNodes)
	v.SetDefault("graph.palette", igraph.DefaultNodes+1)
	v.SetDefault("graph.leading_index", "auto")

	v.SetDefault("pipeline.workers", runtime.NumCPU())
	v.SetDefault("pipeline.instance_timeout", time.Duration(0))

	v.SetDefault("resolver.injected_value", 2.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("metrics.namespace", "regcolor")

	return &Config{v: v}
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file and
// validates the result.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadFromFile(%s): %w", path, err)
	}

	return c.Validate()
}

// Getters
func (c *Config) Nodes() int { return c.v.GetInt("graph.nodes") }
func (c *Config) Palette() int { return c.v.GetInt("graph.palette") }
func (c *Config) LeadingIndex() string { return c.v.GetString("graph.leading_index") }
func (c *Config) Workers() int { return c.v.GetInt("pipeline.workers") }
func (c *Config) InstanceTimeout() time.Duration { return c.v.GetDuration("pipeline.instance_timeout") }
func (c *Config) InjectedValue() float64 { return c.v.GetFloat64("resolver.injected_value") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) LogFormat() string { return c.v.GetString("logging.format") }
func (c *Config) MetricsNamespace() string { return c.v.GetString("metrics.namespace") }

// Layout parses graph.leading_index.
func (c *Config) Layout() (igraph.Layout, error) {
	l, err := igraph.ParseLayout(c.LeadingIndex())
	if err != nil {
		return igraph.LayoutAuto, fmt.Errorf("graph.leading_index: %v: %w", err, ErrInvalidConfig)
	}

	return l, nil
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Validate checks every value against its documented range.
func (c *Config) Validate() error {
	if n := c.Nodes(); n < 1 || n > igraph.MaxNodes {
		return fmt.Errorf("graph.nodes=%d not in [1,%d]: %w", n, igraph.MaxNodes, ErrInvalidConfig)
	}
	if p := c.Palette(); p < 1 {
		return fmt.Errorf("graph.palette=%d < 1: %w", p, ErrInvalidConfig)
	}
	if _, err := c.Layout(); err != nil {
		return err
	}
	if w := c.Workers(); w < 1 {
		return fmt.Errorf("pipeline.workers=%d < 1: %w", w, ErrInvalidConfig)
	}
	if d := c.InstanceTimeout(); d < 0 {
		return fmt.Errorf("pipeline.instance_timeout=%s < 0: %w", d, ErrInvalidConfig)
	}
	if v := c.InjectedValue(); !(v > 1) {
		return fmt.Errorf("resolver.injected_value=%g must exceed 1: %w", v, ErrInvalidConfig)
	}
	switch c.LogFormat() {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format=%q: %w", c.LogFormat(), ErrInvalidConfig)
	}

	return nil
}

// CreateLogger creates a zerolog logger on stdout based on config.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.CreateLoggerTo(os.Stdout)
}

// CreateLoggerTo creates a zerolog logger writing to w. An unknown level
// falls back to info.
func (c *Config) CreateLoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.LogFormat() == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "regcolor").Logger()
}
