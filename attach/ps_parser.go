// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// psLinePattern matches: leading whitespace, pid, whitespace, the fixed-width
// comm column, whitespace, args (possibly empty). ps reserves one character
// of the comm column for the separator, hence width-1.
var psLinePattern = regexp.MustCompile(fmt.Sprintf(`^\s*([0-9]+)\s+(.{%d})\s+(.*)$`, psCommColumnWidth-1))

// PsParser reads the output of PsLinuxCommand and PsDarwinCommand.
type PsParser struct{}

// Parse returns one record per process line. Header and blank lines, lines
// without a numeric pid, and lines without a name are skipped.
func (PsParser) Parse(output string) []AttachItem {
	items := []AttachItem{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if item, ok := parsePsLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

func parsePsLine(line string) (AttachItem, bool) {
	var pidText, name, commandLine string
	if m := psLinePattern.FindStringSubmatch(line); m != nil {
		pidText, name, commandLine = m[1], strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
	} else {
		// A line that reaches past the comm column without matching has a
		// name filling the whole column, which cannot be told apart from its
		// args. Only lines ps never padded are split on whitespace.
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return AttachItem{}, false
		}
		rest := strings.TrimLeftFunc(strings.TrimLeftFunc(line, unicode.IsSpace)[len(fields[0]):], unicode.IsSpace)
		if utf8.RuneCountInString(rest) >= psCommColumnWidth-1 {
			return AttachItem{}, false
		}
		pidText, name = fields[0], fields[1]
		commandLine = strings.Join(fields[2:], " ")
	}

	pid, err := strconv.Atoi(pidText)
	if err != nil || pid <= 0 || name == "" {
		return AttachItem{}, false
	}
	return NewAttachItem(pid, name, commandLine), true
}
