package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jongio/azd-attach/cmdutil"
)

func TestCaptureOutput(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() error
		expected string
	}{
		{
			name: "simple output",
			fn: func() error {
				fmt.Println("hello world")
				return nil
			},
			expected: "hello world\n",
		},
		{
			name: "multiple lines",
			fn: func() error {
				fmt.Println("line 1")
				fmt.Println("line 2")
				return nil
			},
			expected: "line 1\nline 2\n",
		},
		{
			name:     "no output",
			fn:       func() error { return nil },
			expected: "",
		},
		{
			name: "output with error",
			fn: func() error {
				fmt.Println("before error")
				return errors.New("boom")
			},
			expected: "before error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaptureOutput(t, tt.fn); got != tt.expected {
				t.Errorf("CaptureOutput() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCaptureOutputLarge(t *testing.T) {
	line := strings.Repeat("x", 100)
	output := CaptureOutput(t, func() error {
		for i := 0; i < 200; i++ {
			fmt.Println(line)
		}
		return nil
	})
	if got := strings.Count(output, "\n"); got != 200 {
		t.Errorf("expected 200 lines, got %d", got)
	}
}

func TestFakeExecutorScriptedOutput(t *testing.T) {
	f := NewFakeExecutor().OnCommand("ps", "  1 init\n", nil)

	result, err := f.Execute(context.Background(), "ps", []string{"ax"}, cmdutil.ExecOptions{ThrowOnStdErr: true}, map[string]string{"A": "1"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Stdout != "  1 init\n" {
		t.Errorf("Execute() stdout = %q", result.Stdout)
	}

	calls := f.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Command != "ps" || calls[0].Args[0] != "ax" || !calls[0].Options.ThrowOnStdErr || calls[0].Env["A"] != "1" {
		t.Errorf("unexpected recorded call: %+v", calls[0])
	}
}

func TestFakeExecutorUnknownCommand(t *testing.T) {
	_, err := NewFakeExecutor().Execute(context.Background(), "where", []string{"powershell"}, cmdutil.ExecOptions{}, nil)
	var execErr *cmdutil.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("Execute() error = %v, want *cmdutil.ExecutionError", err)
	}
}

func TestFakeExecutorStderr(t *testing.T) {
	f := NewFakeExecutor().OnCommandResult("ps", cmdutil.ExecResult{Stdout: "x", Stderr: "warning"}, nil)

	if _, err := f.Execute(context.Background(), "ps", nil, cmdutil.ExecOptions{}, nil); err != nil {
		t.Errorf("Execute() without ThrowOnStdErr error = %v, want nil", err)
	}
	if _, err := f.Execute(context.Background(), "ps", nil, cmdutil.ExecOptions{ThrowOnStdErr: true}, nil); !errors.Is(err, cmdutil.ErrStdErrOutput) {
		t.Errorf("Execute() with ThrowOnStdErr error = %v, want ErrStdErrOutput", err)
	}
	if got := f.CallCount("ps"); got != 2 {
		t.Errorf("CallCount(ps) = %d, want 2", got)
	}
}

func TestFakeExecutorScriptedError(t *testing.T) {
	boom := errors.New("boom")
	f := NewFakeExecutor().OnCommand("wmic", "", boom)
	if _, err := f.Execute(context.Background(), "wmic", nil, cmdutil.ExecOptions{}, nil); !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want %v", err, boom)
	}
}

func TestFakeExecutorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFakeExecutor().OnCommand("ps", "out", nil)
	if _, err := f.Execute(ctx, "ps", nil, cmdutil.ExecOptions{}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}
