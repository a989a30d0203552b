// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"math"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsProcessRunningCurrentProcess(t *testing.T) {
	assert.True(t, IsProcessRunning(os.Getpid()))
}

func TestIsProcessRunningInvalidPID(t *testing.T) {
	tests := []struct {
		name string
		pid  int
	}{
		{"zero pid", 0},
		{"negative pid", -1},
		{"min int32", math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsProcessRunning(tt.pid))
		})
	}
}

func TestIsProcessRunningExitedProcess(t *testing.T) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd.exe", "/c", "exit 0")
	} else {
		cmd = exec.Command("sh", "-c", "exit 0")
	}
	require.NoError(t, cmd.Run())

	pid := cmd.Process.Pid
	assert.Eventually(t, func() bool { return !IsProcessRunning(pid) }, 2*time.Second, 50*time.Millisecond)
}

func TestInspectCurrentProcess(t *testing.T) {
	info, err := Inspect(context.Background(), os.Getpid())
	require.NoError(t, err)

	assert.Equal(t, os.Getpid(), info.PID)
	assert.NotEmpty(t, info.Name)
	assert.False(t, info.CreateTime.IsZero())
	assert.True(t, info.CreateTime.Before(time.Now().Add(time.Minute)))
}

func TestInspectNotRunning(t *testing.T) {
	_, err := Inspect(context.Background(), -5)
	assert.ErrorIs(t, err, ErrNotRunning)
}
