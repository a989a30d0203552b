// Package testutil provides common testing utilities for azd-attach packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Scripting external command results without spawning processes (FakeExecutor)
//
// Example usage:
//
//	func TestList(t *testing.T) {
//	    exec := testutil.NewFakeExecutor()
//	    exec.OnCommand("ps", psOutput, nil)
//
//	    provider := attach.NewProvider(exec, attach.WithGOOS("linux"))
//	    items, err := provider.GetAttachItems(ctx)
//	    ...
//	    if exec.CallCount("ps") != 1 {
//	        t.Error("expected one ps invocation")
//	    }
//	}
package testutil
