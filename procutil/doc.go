// Package procutil answers questions about a single live process.
//
// It wraps github.com/shirou/gopsutil/v4/process, which uses the native API of
// each platform (OpenProcess on Windows, /proc on Linux, sysctl on macOS and
// the BSDs). That avoids the stale PID problem of os.FindProcess plus
// Signal(0) on Windows.
//
//	if procutil.IsProcessRunning(pid) {
//	    info, err := procutil.Inspect(ctx, pid)
//	    ...
//	}
package procutil
