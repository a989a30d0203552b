// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the CLI commands.
const (
	FlagConfig      = "config"
	FlagDebug       = "debug"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagOutput      = "output"
	FlagEnvFile     = "env-file"
	FlagTimeout     = "timeout"
	FlagInterval    = "interval"
	FlagMetricsPort = "metrics-port"
)

// RegisterGlobalFlags defines the flags every command accepts.
func RegisterGlobalFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "Path to the config file (default "+DefaultPath+")")
	fs.Bool(FlagDebug, false, "Enable debug logging")
	fs.String(FlagLogLevel, d.LogLevel, "Log level: debug, info, warn, error")
	fs.String(FlagLogFormat, d.LogFormat, "Log format: text or json")
	fs.StringP(FlagOutput, "o", d.Output, "Output format: default or json")
	fs.String(FlagEnvFile, d.EnvFile, "Environment overrides file for the listing command")
	fs.Duration(FlagTimeout, d.Timeout, "Timeout for each external command (0 for none)")
}

// RegisterWatchFlags defines the flags of the watch command.
func RegisterWatchFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Duration(FlagInterval, d.Watch.Interval, "Time between refreshes")
	fs.Int(FlagMetricsPort, d.Watch.MetricsPort, "Serve Prometheus metrics on this port (0 disables)")
}

// ApplyFlags copies every explicitly set flag in fs over the config. Flags
// that are not defined in fs are ignored.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool {
		return err == nil && fs.Lookup(name) != nil && fs.Changed(name)
	}

	if changed(FlagLogLevel) {
		c.LogLevel, err = fs.GetString(FlagLogLevel)
	}
	if changed(FlagDebug) {
		var debug bool
		if debug, err = fs.GetBool(FlagDebug); debug {
			c.LogLevel = "debug"
		}
	}
	if changed(FlagLogFormat) {
		c.LogFormat, err = fs.GetString(FlagLogFormat)
	}
	if changed(FlagOutput) {
		c.Output, err = fs.GetString(FlagOutput)
	}
	if changed(FlagEnvFile) {
		c.EnvFile, err = fs.GetString(FlagEnvFile)
	}
	if changed(FlagTimeout) {
		c.Timeout, err = fs.GetDuration(FlagTimeout)
	}
	if changed(FlagInterval) {
		c.Watch.Interval, err = fs.GetDuration(FlagInterval)
	}
	if changed(FlagMetricsPort) {
		c.Watch.MetricsPort, err = fs.GetInt(FlagMetricsPort)
	}
	if err != nil {
		return err
	}

	return c.Validate()
}
