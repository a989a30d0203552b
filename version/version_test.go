// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/azd-attach/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	info := New("jongio.azd.attach", "azd attach")
	assert.Equal(t, "0.0.0-dev", info.Version)
	assert.Equal(t, "unknown", info.BuildDate)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.Equal(t, "jongio.azd.attach", info.ExtensionID)
	assert.Equal(t, "azd attach", info.Name)
	assert.Contains(t, info.Platform, runtime.GOOS+"/"+runtime.GOARCH)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestNewUsesLinkedVariables(t *testing.T) {
	old := Version
	Version = "1.4.0"
	t.Cleanup(func() { Version = old })

	assert.Equal(t, "1.4.0", New("id", "name").Version)
}

func TestInfoString(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "azd attach",
	}
	assert.Equal(t, "azd attach version 1.2.3 (commit: abc123, built: 2024-01-01)", info.String())
}

func runCommand(t *testing.T, format *string, args ...string) string {
	t.Helper()
	cmd := NewCommand(New("jongio.azd.attach", "azd attach"), format)
	cmd.SetArgs(append([]string{}, args...))
	return testutil.CaptureOutput(t, func() error {
		err := cmd.Execute()
		require.NoError(t, err)
		return err
	})
}

func TestNewCommandHumanReadable(t *testing.T) {
	output := runCommand(t, nil)
	for _, want := range []string{"azd attach Version", "Build Date", "Git Commit", "Extension ID", "Platform"} {
		assert.Contains(t, output, want)
	}
}

func TestNewCommandJSON(t *testing.T) {
	format := "json"
	output := runCommand(t, &format)

	var parsed Info
	require.NoError(t, json.Unmarshal([]byte(output), &parsed), output)
	assert.Equal(t, "jongio.azd.attach", parsed.ExtensionID)
	assert.Equal(t, "0.0.0-dev", parsed.Version)
}

func TestNewCommandQuiet(t *testing.T) {
	output := runCommand(t, nil, "--quiet")
	assert.Equal(t, "0.0.0-dev", strings.TrimSpace(output))
}

func TestNewCommandRejectsArgs(t *testing.T) {
	cmd := NewCommand(New("id", "name"), nil)
	cmd.SetArgs([]string{"extra"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	assert.Error(t, cmd.Execute())
}
