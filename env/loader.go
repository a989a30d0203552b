// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package env

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Provider supplies environment-variable overrides for child processes.
type Provider interface {
	Environment(ctx context.Context) (map[string]string, error)
}

// FileProvider loads overrides from a dotenv style file.
type FileProvider struct {
	Path string
}

// Environment reads and parses the file. A missing file or an empty Path
// yields an empty map.
func (p *FileProvider) Environment(ctx context.Context) (map[string]string, error) {
	if p.Path == "" {
		return map[string]string{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", p.Path, err)
	}

	return ParseKeyValueFormat(data)
}

// StaticProvider returns a fixed set of overrides.
type StaticProvider map[string]string

// Environment returns a copy of the map.
func (p StaticProvider) Environment(context.Context) (map[string]string, error) {
	return copyEnv(p), nil
}

// ParseKeyValueFormat parses output in "KEY=value" format (one per line).
// Handles quoted values, an optional "export " prefix, and skips empty lines
// and comments.
func ParseKeyValueFormat(output []byte) (map[string]string, error) {
	values := make(map[string]string)
	content := strings.TrimPrefix(string(output), "\ufeff")

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}

		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, nil
}
