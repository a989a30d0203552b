// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmdutil runs external commands and captures their output.
package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jongio/azd-attach/env"
)

// ErrStdErrOutput is the cause of an ExecutionError when a command wrote to
// stderr and the caller asked for that to be treated as a failure.
var ErrStdErrOutput = errors.New("command wrote to stderr")

// ExecOptions controls how a command's result is judged.
type ExecOptions struct {
	// ThrowOnStdErr makes any stderr output a failure.
	ThrowOnStdErr bool
}

// ExecResult holds the captured output of a finished command.
type ExecResult struct {
	Stdout string
	Stderr string
}

// ExecutionError reports a command that could not be run, exited non-zero,
// or wrote to stderr while ExecOptions.ThrowOnStdErr was set.
type ExecutionError struct {
	Command string
	Args    []string
	Stderr  string
	Err     error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("command %q failed: %v", FormatCommand(e.Command, e.Args), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// PlainExecutor runs commands directly, without a shell.
type PlainExecutor struct {
	// Timeout bounds each command. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// NewPlainExecutor creates an executor with the given per-command timeout.
func NewPlainExecutor(timeout time.Duration) *PlainExecutor {
	return &PlainExecutor{Timeout: timeout}
}

// Execute runs command with args. The child inherits the current process
// environment with overrides applied on top.
func (e *PlainExecutor) Execute(ctx context.Context, command string, args []string, opts ExecOptions, overrides map[string]string) (ExecResult, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = env.MergeSlice(os.Environ(), overrides)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ExecResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return result, &ExecutionError{Command: command, Args: args, Stderr: result.Stderr, Err: err}
	}

	if opts.ThrowOnStdErr && stderr.Len() > 0 {
		return result, &ExecutionError{Command: command, Args: args, Stderr: result.Stderr, Err: ErrStdErrOutput}
	}

	return result, nil
}

// FormatCommand renders a command and its arguments as a single line,
// quoting arguments that contain whitespace or quotes.
func FormatCommand(command string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(command))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsAny(arg, " \t\"") {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}
