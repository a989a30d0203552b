// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package env

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// MapToSlice converts an env map into KEY=VALUE entries, sorted by key.
func MapToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}

// SliceToMap converts KEY=VALUE entries into a map, skipping malformed rows.
func SliceToMap(envSlice []string) map[string]string {
	result := make(map[string]string, len(envSlice))
	for _, envVar := range envSlice {
		parts := strings.SplitN(envVar, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}

// MergeSlice returns base with overrides applied. Entries of base whose key is
// overridden are dropped and the override is appended. Keys compare
// case-insensitively on Windows, matching how the OS treats them.
// base is never modified.
func MergeSlice(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return copySlice(base)
	}

	overridden := make(map[string]bool, len(overrides))
	for k := range overrides {
		overridden[normalizeKey(k)] = true
	}

	result := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		key, _, _ := strings.Cut(entry, "=")
		if overridden[normalizeKey(key)] {
			continue
		}
		result = append(result, entry)
	}

	return append(result, MapToSlice(overrides)...)
}

func normalizeKey(key string) string {
	if runtime.GOOS == "windows" {
		return strings.ToUpper(key)
	}
	return key
}

func copySlice(envSlice []string) []string {
	result := make([]string, len(envSlice))
	copy(result, envSlice)
	return result
}

func copyEnv(env map[string]string) map[string]string {
	result := make(map[string]string, len(env))
	for k, v := range env {
		result[k] = v
	}
	return result
}
