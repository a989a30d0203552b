// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// ErrNotRunning is returned by Inspect when no process has the given pid.
var ErrNotRunning = errors.New("process is not running")

// Info describes a live process.
type Info struct {
	PID         int       `json:"pid"`
	Name        string    `json:"name"`
	CommandLine string    `json:"commandLine"`
	CreateTime  time.Time `json:"createTime,omitzero"`
	Status      string    `json:"status,omitempty"`
}

// IsProcessRunning checks if a process with the given PID is running.
func IsProcessRunning(pid int) bool {
	return IsProcessRunningContext(context.Background(), pid)
}

// IsProcessRunningContext is IsProcessRunning with a context.
func IsProcessRunningContext(ctx context.Context, pid int) bool {
	if pid <= 0 || pid > math.MaxInt32 {
		return false
	}
	exists, err := process.PidExistsWithContext(ctx, int32(pid))
	return err == nil && exists
}

// Inspect reads name, command line, start time and status of pid. Fields the
// caller may not read (access denied on system processes) are left empty.
func Inspect(ctx context.Context, pid int) (Info, error) {
	if !IsProcessRunningContext(ctx, pid) {
		return Info{}, fmt.Errorf("pid %d: %w", pid, ErrNotRunning)
	}

	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return Info{}, fmt.Errorf("pid %d: %w", pid, ErrNotRunning)
		}
		return Info{}, fmt.Errorf("failed to open process %d: %w", pid, err)
	}

	info := Info{PID: pid}
	if name, err := p.NameWithContext(ctx); err == nil {
		info.Name = name
	}
	if cmdline, err := p.CmdlineWithContext(ctx); err == nil {
		info.CommandLine = cmdline
	}
	if created, err := p.CreateTimeWithContext(ctx); err == nil && created > 0 {
		info.CreateTime = time.UnixMilli(created)
	}
	if status, err := p.StatusWithContext(ctx); err == nil {
		info.Status = strings.Join(status, ",")
	}

	return info, nil
}
