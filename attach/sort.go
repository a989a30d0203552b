// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"slices"
	"strings"
)

const pythonPrefix = "python"

// IsPythonLike reports whether the process name, as reported by the OS,
// starts with "python". The check is case-sensitive.
func IsPythonLike(item AttachItem) bool {
	return strings.HasPrefix(item.ProcessName, pythonPrefix)
}

// Compare orders python-like items first, python items by command line and
// all others by process name, ignoring case in both comparisons.
func Compare(a, b AttachItem) int {
	aPython, bPython := IsPythonLike(a), IsPythonLike(b)
	switch {
	case aPython && bPython:
		return compareFolded(a.CommandLine, b.CommandLine)
	case aPython:
		return -1
	case bPython:
		return 1
	default:
		return compareFolded(a.ProcessName, b.ProcessName)
	}
}

// SortItems sorts items in place by Compare. Equal items keep their order.
func SortItems(items []AttachItem) {
	slices.SortStableFunc(items, Compare)
}

func compareFolded(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Filter returns the items whose name, command line or pid contains query,
// ignoring case. An empty query returns a copy of items.
func Filter(items []AttachItem, query string) []AttachItem {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]AttachItem, 0, len(items))
	for _, item := range items {
		if query == "" ||
			strings.Contains(strings.ToLower(item.ProcessName), query) ||
			strings.Contains(strings.ToLower(item.CommandLine), query) ||
			strings.Contains(item.ID, query) {
			result = append(result, item)
		}
	}
	return result
}

// PythonOnly returns the python-like items.
func PythonOnly(items []AttachItem) []AttachItem {
	result := make([]AttachItem, 0, len(items))
	for _, item := range items {
		if IsPythonLike(item) {
			result = append(result, item)
		}
	}
	return result
}
