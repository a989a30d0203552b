// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package env

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseKeyValueFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "simple values",
			input:    "KEY1=value1\nKEY2=value2\n",
			expected: map[string]string{"KEY1": "value1", "KEY2": "value2"},
		},
		{
			name:     "quoted values",
			input:    "A=\"double quoted\"\nB='single quoted'\n",
			expected: map[string]string{"A": "double quoted", "B": "single quoted"},
		},
		{
			name:     "comments and blank lines",
			input:    "# comment\n\nKEY=value\n   \n# another\n",
			expected: map[string]string{"KEY": "value"},
		},
		{
			name:     "crlf line endings",
			input:    "A=1\r\nB=2\r\n",
			expected: map[string]string{"A": "1", "B": "2"},
		},
		{
			name:     "export prefix",
			input:    "export PYTHONPATH=/src\n",
			expected: map[string]string{"PYTHONPATH": "/src"},
		},
		{
			name:     "empty value",
			input:    "EMPTY=\n",
			expected: map[string]string{"EMPTY": ""},
		},
		{
			name:     "value containing equals",
			input:    "URL=http://host/?a=b\n",
			expected: map[string]string{"URL": "http://host/?a=b"},
		},
		{
			name:     "invalid lines skipped",
			input:    "noequals\n=nokey\nBAD KEY=x\nGOOD=1\n",
			expected: map[string]string{"GOOD": "1"},
		},
		{
			name:     "byte order mark",
			input:    "\ufeffA=1\n",
			expected: map[string]string{"A": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeyValueFormat([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseKeyValueFormat() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseKeyValueFormat() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFileProviderReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PYTHONPATH=/src\n# note\nDEBUG=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := (&FileProvider{Path: path}).Environment(context.Background())
	if err != nil {
		t.Fatalf("Environment() error = %v", err)
	}
	expected := map[string]string{"PYTHONPATH": "/src", "DEBUG": "1"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Environment() = %v, want %v", got, expected)
	}
}

func TestFileProviderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.env")
	got, err := (&FileProvider{Path: path}).Environment(context.Background())
	if err != nil {
		t.Fatalf("Environment() error = %v, want nil for missing file", err)
	}
	if len(got) != 0 {
		t.Errorf("Environment() = %v, want empty", got)
	}
}

func TestFileProviderEmptyPath(t *testing.T) {
	got, err := (&FileProvider{}).Environment(context.Background())
	if err != nil || len(got) != 0 {
		t.Errorf("Environment() = %v, %v; want empty map and nil error", got, err)
	}
}

func TestFileProviderDirectoryFails(t *testing.T) {
	if _, err := (&FileProvider{Path: t.TempDir()}).Environment(context.Background()); err == nil {
		t.Error("Environment() on a directory should fail")
	}
}

func TestStaticProviderReturnsCopy(t *testing.T) {
	p := StaticProvider{"A": "1"}
	got, err := p.Environment(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got["A"] = "changed"
	if p["A"] != "1" {
		t.Error("StaticProvider.Environment() returned the underlying map")
	}
}
