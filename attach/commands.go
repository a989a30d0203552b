// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"strings"

	"github.com/jongio/azd-attach/platform"
)

// psCommColumnWidth is the width ps gives the comm column. The column title is
// a run of this many characters, which forces ps to pad every name to it.
const psCommColumnWidth = 50

var psCommColumnTitle = strings.Repeat("a", psCommColumnWidth)

// Well-known process listing commands.
var (
	// PsLinuxCommand lists pid, short name and full arguments on Linux.
	PsLinuxCommand = newProcessListCommand("ps", "axww", "-o", "pid=,comm="+psCommColumnTitle+",args=")

	// PsDarwinCommand is PsLinuxCommand plus -c, which makes macOS report the
	// executable name instead of its path in the comm column.
	PsDarwinCommand = newProcessListCommand("ps", "axww", "-o", "pid=,comm="+psCommColumnTitle+",args=", "-c")

	// PowerShellCommand queries Win32_Process through CIM and prints JSON.
	PowerShellCommand = newProcessListCommand("powershell", "-Command",
		"Get-CimInstance Win32_Process | Select-Object Name,ProcessId,CommandLine | ConvertTo-Json")

	// WmicCommand queries Win32_Process through WMIC in Key=Value list format.
	WmicCommand = newProcessListCommand("wmic", "process", "get", "Name,ProcessId,CommandLine", "/FORMAT:list")
)

// Lister pairs a listing command with the parser for its output. Once a
// Lister is selected the command and parser always travel together.
type Lister struct {
	// Name identifies the mechanism in logs and metrics.
	Name    string
	Command ProcessListCommand
	Parser  Parser

	// requires names a tool that must be found on PATH before Command can
	// run. When the lookup fails the fallback is used instead.
	requires string
	fallback *Lister
}

var (
	psLinuxLister  = Lister{Name: "ps-linux", Command: PsLinuxCommand, Parser: PsParser{}}
	psDarwinLister = Lister{Name: "ps-darwin", Command: PsDarwinCommand, Parser: PsParser{}}
	wmicLister     = Lister{Name: "wmic", Command: WmicCommand, Parser: WmicParser{}}

	powerShellLister = Lister{
		Name:     "powershell",
		Command:  PowerShellCommand,
		Parser:   PowerShellParser{},
		requires: "powershell",
		fallback: &wmicLister,
	}
)

// listerFor returns the preferred Lister for an OS family.
func listerFor(os platform.OSType) (Lister, bool) {
	switch os {
	case platform.OSX:
		return psDarwinLister, true
	case platform.Linux:
		return psLinuxLister, true
	case platform.Windows:
		return powerShellLister, true
	default:
		return Lister{}, false
	}
}

// toolLookupCommand is the probe run to find tool on PATH. Only Windows
// listers declare a required tool, so the Windows lookup is used.
func toolLookupCommand(tool string) ProcessListCommand {
	return newProcessListCommand("where", tool)
}
