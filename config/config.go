// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads azd-attach settings from a YAML file and command-line flags.
//
// Values are resolved in order: built-in defaults, then the YAML file, then
// any flag the user set explicitly.
//
//	# .azd/attach.yaml
//	logLevel: debug
//	envFile: .env
//	timeout: 30s
//	watch:
//	  interval: 2s
//	  metricsPort: 9090
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no path is given.
var DefaultPath = filepath.Join(".azd", "attach.yaml")

// Config holds all azd-attach settings.
type Config struct {
	LogLevel  string        `yaml:"logLevel"`
	LogFormat string        `yaml:"logFormat"`
	Output    string        `yaml:"output"`
	EnvFile   string        `yaml:"envFile"`
	Timeout   time.Duration `yaml:"timeout"`
	Watch     WatchConfig   `yaml:"watch"`
	MCP       MCPConfig     `yaml:"mcp"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
	// RateLimit caps refreshes per second, including manual ones.
	RateLimit float64 `yaml:"rateLimit"`
	// BreakerFailures is how many consecutive failed listings open the
	// circuit breaker. Zero disables the breaker.
	BreakerFailures int           `yaml:"breakerFailures"`
	BreakerTimeout  time.Duration `yaml:"breakerTimeout"`
	// MetricsPort serves Prometheus metrics when non-zero.
	MetricsPort int `yaml:"metricsPort"`
}

// MCPConfig configures the MCP server.
type MCPConfig struct {
	// RateLimit caps tool calls per second.
	RateLimit float64 `yaml:"rateLimit"`
	Burst     int     `yaml:"burst"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    "default",
		EnvFile:   ".env",
		Timeout:   30 * time.Second,
		Watch: WatchConfig{
			Interval:        2 * time.Second,
			RateLimit:       2,
			BreakerFailures: 3,
			BreakerTimeout:  30 * time.Second,
		},
		MCP: MCPConfig{
			RateLimit: 1,
			Burst:     5,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("logFormat must be text or json, got %q", c.LogFormat)
	}
	switch c.Output {
	case "default", "json":
	default:
		return fmt.Errorf("output must be default or json, got %q", c.Output)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be positive, got %v", c.Watch.Interval)
	}
	if c.Watch.RateLimit < 0 || c.MCP.RateLimit < 0 {
		return errors.New("rate limits must not be negative")
	}
	if c.Watch.BreakerFailures < 0 {
		return fmt.Errorf("watch.breakerFailures must not be negative, got %d", c.Watch.BreakerFailures)
	}
	if c.Watch.MetricsPort < 0 || c.Watch.MetricsPort > 65535 {
		return fmt.Errorf("watch.metricsPort out of range: %d", c.Watch.MetricsPort)
	}
	return nil
}
