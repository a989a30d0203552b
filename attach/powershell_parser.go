// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"encoding/json"
	"strings"
)

// powerShellProcess is one element of the ConvertTo-Json output.
type powerShellProcess struct {
	Name        string  `json:"Name"`
	ProcessID   int     `json:"ProcessId"`
	CommandLine *string `json:"CommandLine"`
}

// PowerShellParser reads the JSON printed by PowerShellCommand.
type PowerShellParser struct{}

// Parse accepts either a JSON array or, when a single process is listed, a
// lone object. Elements that do not decode, lack a pid, or lack a name are
// dropped. Output that is not JSON at all yields an empty list.
func (PowerShellParser) Parse(output string) []AttachItem {
	items := []AttachItem{}
	trimmed := strings.TrimSpace(strings.TrimPrefix(output, "\ufeff"))
	if trimmed == "" {
		return items
	}

	var elements []json.RawMessage
	if strings.HasPrefix(trimmed, "{") {
		elements = []json.RawMessage{json.RawMessage(trimmed)}
	} else if err := json.Unmarshal([]byte(trimmed), &elements); err != nil {
		return items
	}

	for _, raw := range elements {
		var proc powerShellProcess
		if err := json.Unmarshal(raw, &proc); err != nil {
			continue
		}
		name := strings.TrimSpace(proc.Name)
		if proc.ProcessID <= 0 || name == "" {
			continue
		}
		commandLine := ""
		if proc.CommandLine != nil {
			commandLine = strings.TrimSpace(*proc.CommandLine)
		}
		items = append(items, NewAttachItem(proc.ProcessID, name, commandLine))
	}
	return items
}
