// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"fmt"

	"github.com/jongio/azd-attach/cliout"
	"github.com/spf13/cobra"
)

// NewCommand creates a version command that displays build info.
// outputFormat optionally points at the global --output flag value.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != nil && *outputFormat == string(cliout.FormatJSON) {
				return cliout.PrintJSON(info)
			}

			if quiet {
				fmt.Println(info.Version)
				return nil
			}

			cliout.Header(fmt.Sprintf("%s Version", info.Name))
			cliout.Label("Version", info.Version)
			cliout.Label("Build Date", info.BuildDate)
			cliout.Label("Git Commit", info.GitCommit)
			cliout.Label("Extension ID", info.ExtensionID)
			cliout.Label("Platform", info.Platform)
			cliout.Label("Go", info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
