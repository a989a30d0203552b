// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(pid int, name, commandLine string) AttachItem {
	return NewAttachItem(pid, name, commandLine)
}

func pids(items []AttachItem) []int {
	result := make([]int, len(items))
	for i, it := range items {
		result[i] = it.PID
	}
	return result
}

func TestIsPythonLike(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"python", true},
		{"python3", true},
		{"python3.12", true},
		{"python.exe", true},
		{"pythonw.exe", true},
		{"Python", false},
		{"PYTHON.EXE", false},
		{"ipython", false},
		{" python", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPythonLike(item(1, tt.name, "")))
		})
	}
}

func TestSortPythonByCommandLine(t *testing.T) {
	items := []AttachItem{
		item(1, "python3", "python script_b.py"),
		item(2, "python3", "python script_a.py"),
	}
	SortItems(items)
	assert.Equal(t, []int{2, 1}, pids(items))
}

func TestSortNonPythonByNameIgnoringCase(t *testing.T) {
	items := []AttachItem{
		item(1, "Finder", ""),
		item(2, "bash", ""),
	}
	SortItems(items)
	assert.Equal(t, []int{2, 1}, pids(items))
}

func TestSortPythonFirst(t *testing.T) {
	items := []AttachItem{
		item(1, "aaa", "aaa"),
		item(2, "zsh", "zsh"),
		item(3, "python3", "python3 z.py"),
		item(4, "Python", "Python a.py"),
		item(5, "python", "python a.py"),
	}
	SortItems(items)
	assert.Equal(t, []int{5, 3, 1, 4, 2}, pids(items))
}

func TestSortPythonCommandLineIgnoresCase(t *testing.T) {
	items := []AttachItem{
		item(1, "python", "python B.py"),
		item(2, "python", "python a.py"),
		item(3, "python", "python C.py"),
	}
	SortItems(items)
	assert.Equal(t, []int{2, 1, 3}, pids(items))
}

func TestSortIsStable(t *testing.T) {
	items := []AttachItem{
		item(1, "Bash", "x"),
		item(2, "bash", "y"),
		item(3, "BASH", "z"),
		item(4, "python", "python APP.py"),
		item(5, "python", "python app.py"),
	}
	SortItems(items)
	assert.Equal(t, []int{4, 5, 1, 2, 3}, pids(items))
}

func TestSortEmpty(t *testing.T) {
	var items []AttachItem
	SortItems(items)
	assert.Empty(t, items)
}

func TestCompareProperties(t *testing.T) {
	samples := []AttachItem{
		item(1, "python", "python a.py"),
		item(2, "python3", "PYTHON a.py"),
		item(3, "python3", "python b.py"),
		item(4, "python", ""),
		item(5, "bash", "bash"),
		item(6, "Bash", "-bash"),
		item(7, "Finder", "/System/Finder"),
		item(8, "Python", "Python x.py"),
		item(9, "", ""),
	}

	for _, a := range samples {
		assert.Zero(t, Compare(a, a), "compare(%v, %v) should be 0", a.PID, a.PID)
		for _, b := range samples {
			assert.Equal(t, Compare(a, b), -Compare(b, a), "antisymmetry for %d, %d", a.PID, b.PID)
			for _, c := range samples {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "transitivity for %d, %d, %d", a.PID, b.PID, c.PID)
				}
			}
		}
	}
}

func TestSortDoesNotModifyFields(t *testing.T) {
	items := []AttachItem{item(2, "zsh", "-zsh"), item(1, "python", "python app.py")}
	original := map[int]AttachItem{2: items[0], 1: items[1]}
	SortItems(items)
	for _, it := range items {
		assert.Equal(t, original[it.PID], it)
	}
}

func TestFilter(t *testing.T) {
	items := []AttachItem{
		item(10, "python3", "python3 manage.py runserver"),
		item(22, "bash", "-bash"),
		item(310, "Code", "/usr/share/code/code"),
	}

	tests := []struct {
		query    string
		expected []int
	}{
		{"", []int{10, 22, 310}},
		{"   ", []int{10, 22, 310}},
		{"MANAGE", []int{10}},
		{"code", []int{310}},
		{"10", []int{10, 310}},
		{"nomatch", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result := Filter(items, tt.query)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, pids(result))
		})
	}
}

func TestPythonOnly(t *testing.T) {
	items := []AttachItem{
		item(1, "python3", "python3 a.py"),
		item(2, "Python", "Python b.py"),
		item(3, "bash", "-bash"),
		item(4, "python.exe", "python.exe c.py"),
	}
	assert.Equal(t, []int{1, 4}, pids(PythonOnly(items)))
}
