// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// getArgsMap extracts the arguments map from a tool call request. It returns
// an empty map when arguments are nil or not an object.
func getArgsMap(request mcp.CallToolRequest) map[string]any {
	if m, ok := request.Params.Arguments.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func getStringParam(args map[string]any, key string) (string, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return "", nil
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return s, nil
}

func getBoolParam(args map[string]any, key string) (bool, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return false, nil
	}
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q must be a boolean", key)
	}
	return b, nil
}

// getIntParam reads a whole JSON number. Missing parameters yield def.
func getIntParam(args map[string]any, key string, def int) (int, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return def, nil
	}
	var f float64
	switch n := val.(type) {
	case float64:
		f = n
	case int:
		return n, nil
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("parameter %q must be a number", key)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("parameter %q must be a whole number", key)
	}
	return int(f), nil
}

// marshalToolResult returns data as indented JSON text.
func marshalToolResult(data any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error())
	}
	return mcp.NewToolResultText(string(jsonData))
}
