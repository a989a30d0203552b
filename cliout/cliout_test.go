// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jongio/azd-attach/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	return testutil.CaptureOutput(t, func() error {
		fn()
		return nil
	})
}

func plainOutput(t *testing.T) {
	t.Helper()
	NoColor()
	unicode := supportsUnicode
	supportsUnicode = true
	t.Cleanup(func() {
		supportsUnicode = unicode
		colorEnabled = detectColor()
		_ = SetFormat("default")
	})
}

func TestSetFormat(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"default", FormatDefault, false},
		{"", FormatDefault, false},
		{"json", FormatJSON, false},
		{"yaml", FormatDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.NoError(t, SetFormat("default"))
			err := SetFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, GetFormat())
			assert.Equal(t, tt.want == FormatJSON, IsJSON())
		})
	}
}

func TestMessages(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name   string
		fn     func()
		prefix string
	}{
		{"success", func() { Success("attached to %d", 42) }, SymbolCheck},
		{"warning", func() { Warning("attached to %d", 42) }, SymbolWarning},
		{"info", func() { Info("attached to %d", 42) }, SymbolInfo},
		{"added", func() { Added("attached to %d", 42) }, SymbolPlus},
		{"removed", func() { Removed("attached to %d", 42) }, SymbolMinus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, tt.fn)
			assert.True(t, strings.HasPrefix(output, tt.prefix), "got %q", output)
			assert.Contains(t, output, "attached to 42")
			assert.NotContains(t, output, "\033[", "colors disabled")
		})
	}
}

func TestASCIIFallback(t *testing.T) {
	plainOutput(t)
	supportsUnicode = false

	output := capture(t, func() { Success("done") })
	assert.Equal(t, "[+] done\n", output)
}

func TestForceColor(t *testing.T) {
	plainOutput(t)
	ForceColor()

	output := capture(t, func() { Success("done") })
	assert.Contains(t, output, BrightGreen)
	assert.Contains(t, output, Reset)
}

func TestHeaderAndLabel(t *testing.T) {
	plainOutput(t)

	output := capture(t, func() {
		Header("azd-attach")
		Label("Version", "1.2.3")
	})
	assert.Contains(t, output, "azd-attach\n==========\n")
	assert.Contains(t, output, "Version:     1.2.3")
}

func TestHint(t *testing.T) {
	plainOutput(t)

	assert.Empty(t, capture(t, func() { Hint() }))
	assert.Equal(t, "a • b\n", capture(t, func() { Hint("a", "b") }))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"python3 app.py", 0, "python3 app.py"},
		{"python3 app.py", 20, "python3 app.py"},
		{"python3 app.py", 10, "python3..."},
		{"python3 app.py", 2, "py"},
		{"pythön", 5, "py..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
	}
}

func TestTable(t *testing.T) {
	plainOutput(t)

	assert.Empty(t, capture(t, func() { Table([]string{"PID"}, nil) }))

	output := capture(t, func() {
		Table([]string{"PID", "NAME"}, []TableRow{
			{"PID": "1337", "NAME": "python3"},
			{"PID": "2", "NAME": "bash"},
		})
	})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   PID   NAME", lines[0])
	assert.Equal(t, "   ────  ───────", lines[1])
	assert.Equal(t, "   1337  python3", lines[2])
	assert.Equal(t, "   2     bash", lines[3])
}

func TestPrint(t *testing.T) {
	plainOutput(t)
	data := map[string]any{"pid": 42}

	called := false
	output := capture(t, func() {
		require.NoError(t, Print(data, func() { called = true }))
	})
	assert.True(t, called)
	assert.Empty(t, output)

	require.NoError(t, SetFormat("json"))
	called = false
	output = capture(t, func() {
		require.NoError(t, Print(data, func() { called = true }))
	})
	assert.False(t, called)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, float64(42), decoded["pid"])
}
