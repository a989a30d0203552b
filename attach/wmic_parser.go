// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

const (
	wmicNameKey        = "Name"
	wmicCommandLineKey = "CommandLine"
	wmicPidKey         = "ProcessId"

	// dosDevicePrefix appears in front of some system process paths.
	dosDevicePrefix = `\??\`
)

// WmicParser reads the /FORMAT:list output of WmicCommand.
type WmicParser struct{}

// Parse reads Key=Value blocks. WMIC prints keys in alphabetical order, so
// the ProcessId line closes each block. Blocks with a non-numeric pid or no
// name are dropped. UTF-16 output is decoded first.
func (WmicParser) Parse(output string) []AttachItem {
	items := []AttachItem{}
	var name, commandLine string

	for _, line := range strings.Split(decodeWmicOutput(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case wmicNameKey:
			name = value
		case wmicCommandLineKey:
			commandLine = strings.TrimPrefix(value, dosDevicePrefix)
		case wmicPidKey:
			if pid, err := strconv.Atoi(value); err == nil && pid > 0 && name != "" {
				items = append(items, NewAttachItem(pid, name, commandLine))
			}
			name, commandLine = "", ""
		}
	}
	return items
}

// decodeWmicOutput converts UTF-16LE output, recognized by a byte order mark
// or embedded NUL bytes, to UTF-8. Other input is returned unchanged.
func decodeWmicOutput(output string) string {
	if !strings.HasPrefix(output, "\xff\xfe") && !strings.Contains(output, "\x00") {
		return strings.TrimPrefix(output, "\ufeff")
	}
	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().String(output)
	if err != nil {
		return strings.ReplaceAll(output, "\x00", "")
	}
	return decoded
}
