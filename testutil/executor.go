package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jongio/azd-attach/cmdutil"
)

// Call records one invocation made through a FakeExecutor.
type Call struct {
	Command string
	Args    []string
	Options cmdutil.ExecOptions
	Env     map[string]string
}

type fakeResponse struct {
	result cmdutil.ExecResult
	err    error
}

// FakeExecutor returns scripted results keyed by command name and records
// every call. Commands without a scripted result fail with an
// *cmdutil.ExecutionError. It is safe for concurrent use.
type FakeExecutor struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []Call
}

// NewFakeExecutor creates an executor with no scripted commands.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{responses: make(map[string]fakeResponse)}
}

// OnCommand scripts the stdout and error returned for command.
func (f *FakeExecutor) OnCommand(command, stdout string, err error) *FakeExecutor {
	return f.OnCommandResult(command, cmdutil.ExecResult{Stdout: stdout}, err)
}

// OnCommandResult scripts the full result returned for command.
func (f *FakeExecutor) OnCommandResult(command string, result cmdutil.ExecResult, err error) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[command] = fakeResponse{result: result, err: err}
	return f
}

// Execute implements the attach executor contract, honouring ThrowOnStdErr
// for scripted stderr.
func (f *FakeExecutor) Execute(ctx context.Context, command string, args []string, opts cmdutil.ExecOptions, env map[string]string) (cmdutil.ExecResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Command: command, Args: slices.Clone(args), Options: opts, Env: env})
	resp, ok := f.responses[command]
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return cmdutil.ExecResult{}, &cmdutil.ExecutionError{Command: command, Args: args, Err: err}
	}
	if !ok {
		return cmdutil.ExecResult{}, &cmdutil.ExecutionError{Command: command, Args: args, Err: fmt.Errorf("executable file not found: %s", command)}
	}
	if resp.err != nil {
		return resp.result, resp.err
	}
	if opts.ThrowOnStdErr && resp.result.Stderr != "" {
		return resp.result, &cmdutil.ExecutionError{Command: command, Args: args, Stderr: resp.result.Stderr, Err: cmdutil.ErrStdErrOutput}
	}
	return resp.result, nil
}

// Calls returns a copy of the recorded calls in order.
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// CallCount returns how many times command was executed.
func (f *FakeExecutor) CallCount(command string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Command == command {
			n++
		}
	}
	return n
}
