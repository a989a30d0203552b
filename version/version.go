// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package version holds azd-attach build information and the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/jongio/azd-attach/platform"
)

// Set via -ldflags "-X github.com/jongio/azd-attach/version.Version=..." at build time.
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a build.
type Info struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	GitCommit   string `json:"gitCommit"`
	ExtensionID string `json:"extensionId"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	GoVersion   string `json:"goVersion"`
}

// New creates an Info from the linked build variables and the running platform.
func New(extensionID, name string) *Info {
	return &Info{
		Version:     Version,
		BuildDate:   BuildDate,
		GitCommit:   GitCommit,
		ExtensionID: extensionID,
		Name:        name,
		Platform:    fmt.Sprintf("%s (%s/%s)", platform.Current(), runtime.GOOS, runtime.GOARCH),
		GoVersion:   runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
