// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package platform reports the operating system family the process runs on.
package platform

import "runtime"

// OSType identifies an operating system family.
type OSType int

const (
	// Unknown is any operating system not listed below.
	Unknown OSType = iota
	// Windows is Microsoft Windows.
	Windows
	// OSX is Apple macOS.
	OSX
	// Linux is any Linux distribution.
	Linux
)

// String returns the display name of the OS family.
func (t OSType) String() string {
	switch t {
	case Windows:
		return "Windows"
	case OSX:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return "Unknown"
	}
}

// FromGOOS maps a runtime.GOOS value to its OS family.
func FromGOOS(goos string) OSType {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return OSX
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// Current returns the OS family of the running process.
func Current() OSType {
	return FromGOOS(runtime.GOOS)
}
