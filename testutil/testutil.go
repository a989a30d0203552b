package testutil

import (
	"os"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("test output")
//	    return nil
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered to avoid goroutine leak
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}
