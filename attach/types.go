// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"context"
	"slices"
	"strconv"

	"github.com/jongio/azd-attach/cmdutil"
)

// AttachItem is one process offered for debugger attachment.
type AttachItem struct {
	PID         int    `json:"pid"`
	ProcessName string `json:"processName"`
	CommandLine string `json:"commandLine"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	ID          string `json:"id"`
}

// NewAttachItem builds an item with its presentation fields filled from pid,
// name and command line.
func NewAttachItem(pid int, processName, commandLine string) AttachItem {
	id := strconv.Itoa(pid)
	return AttachItem{
		PID:         pid,
		ProcessName: processName,
		CommandLine: commandLine,
		Label:       processName,
		Description: id,
		Detail:      commandLine,
		ID:          id,
	}
}

// ProcessListCommand names an external command that prints the process table.
// Its fields are fixed at construction.
type ProcessListCommand struct {
	command string
	args    []string
}

func newProcessListCommand(command string, args ...string) ProcessListCommand {
	return ProcessListCommand{command: command, args: args}
}

// Command returns the executable name.
func (c ProcessListCommand) Command() string {
	return c.command
}

// Args returns a copy of the arguments.
func (c ProcessListCommand) Args() []string {
	return slices.Clone(c.args)
}

// Equal reports whether both commands run the same executable with the same arguments.
func (c ProcessListCommand) Equal(other ProcessListCommand) bool {
	return c.command == other.command && slices.Equal(c.args, other.args)
}

func (c ProcessListCommand) String() string {
	return cmdutil.FormatCommand(c.command, c.args)
}

// Parser turns the raw output of a ProcessListCommand into records.
// Implementations never fail: lines they cannot read are dropped.
type Parser interface {
	Parse(output string) []AttachItem
}

// Executor runs an external command. It fails when the command cannot be
// started, exits non-zero, or writes to stderr while opts.ThrowOnStdErr is set.
type Executor interface {
	Execute(ctx context.Context, command string, args []string, opts cmdutil.ExecOptions, env map[string]string) (cmdutil.ExecResult, error)
}

// EnvironmentProvider supplies environment overrides for the listing command.
type EnvironmentProvider interface {
	Environment(ctx context.Context) (map[string]string, error)
}

// ProcessLogger records command invocations for diagnostics.
type ProcessLogger interface {
	LogProcess(command string, args []string, opts cmdutil.ExecOptions)
}
