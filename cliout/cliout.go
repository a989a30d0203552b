// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides structured output formatting for azd-attach commands.
// It supports human-readable text and JSON, with ANSI colors when stdout is a
// terminal and NO_COLOR is unset.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes
const (
	Reset        = "\033[0m"
	Bold         = "\033[1m"
	Dim          = "\033[2m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols with ASCII fallbacks
const (
	SymbolCheck   = "✓"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolPlus    = "+"
	SymbolMinus   = "-"

	ASCIICheck   = "[+]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	colorEnabled = detectColor()
)

// supportsUnicode reports whether the terminal can display the Unicode symbols.
var supportsUnicode = detectUnicodeSupport()

func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code and PowerShell hosts render Unicode; legacy conhost does not.
	return os.Getenv("WT_SESSION") != "" ||
		os.Getenv("TERM_PROGRAM") == "vscode" ||
		os.Getenv("PSModulePath") != "" ||
		os.Getenv("TERM") != ""
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	colorEnabled = true
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	colorEnabled = false
	mu.Unlock()
}

func colorize(color, s string) string {
	mu.RLock()
	enabled := colorEnabled
	mu.RUnlock()
	if !enabled {
		return s
	}
	return color + s + Reset
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format. For the default format the
// formatter is called; for JSON the data is marshaled.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func Warning(format string, args ...any) {
	fmt.Printf("%s  %s\n", colorize(BrightYellow, getIcon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints an info message.
func Info(format string, args ...any) {
	fmt.Printf("%s  %s\n", colorize(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Added prints a line for something that appeared.
func Added(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(BrightGreen, SymbolPlus), fmt.Sprintf(format, args...))
}

// Removed prints a line for something that went away.
func Removed(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(BrightRed, SymbolMinus), fmt.Sprintf(format, args...))
}

// Newline prints an empty line.
func Newline() {
	fmt.Println()
}

// Label prints a label and value pair.
func Label(label, value string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Hint prints compact hints on a single line with bullet separators.
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	fmt.Println(colorize(Dim, strings.Join(hints, " • ")))
}

// Muted returns dim text.
func Muted(format string, args ...any) string {
	return colorize(Dim, fmt.Sprintf(format, args...))
}

// Truncate shortens s to at most width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows. Nothing is
// printed when rows is empty.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int, len(headers))
	for _, header := range headers {
		widths[header] = len([]rune(header))
	}
	for _, row := range rows {
		for _, header := range headers {
			if n := len([]rune(row[header])); n > widths[header] {
				widths[header] = n
			}
		}
	}

	var b strings.Builder
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(colorize(Bold, pad(header, widths[header])))
		b.WriteString("  ")
	}
	fmt.Println(strings.TrimRight(b.String(), " "))

	b.Reset()
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(strings.Repeat("─", widths[header]))
		b.WriteString("  ")
	}
	fmt.Println(strings.TrimRight(b.String(), " "))

	for _, row := range rows {
		b.Reset()
		b.WriteString("   ")
		for _, header := range headers {
			b.WriteString(pad(row[header], widths[header]))
			b.WriteString("  ")
		}
		fmt.Println(strings.TrimRight(b.String(), " "))
	}
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
