// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in the root command)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("listing processes", "command", "ps")
//	logutil.Info("watch started", "interval", interval)
//	logutil.Warn("probe failed, using fallback", "error", err)
//	logutil.Error("listing failed", "error", err)
//
// # Component Loggers
//
// NewLogger scopes a logger to a component. A ComponentLogger also records
// external command invocations through LogProcess, which the attach provider
// uses as its diagnostic logger:
//
//	logger := logutil.NewLogger("attach")
//	logger.LogProcess("ps", args, cmdutil.ExecOptions{ThrowOnStdErr: true})
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set AZD_ATTACH_DEBUG=true before SetupLogger runs
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"watch started","interval":"2s"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="watch started" interval=2s
package logutil
