// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"os"
	"os/signal"

	"github.com/jongio/azd-attach/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve attach candidates to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			srv := mcpserver.New(a.provider(), mcpserver.Options{
				Name:      "azd-attach",
				Version:   a.info.Version,
				RateLimit: a.cfg.MCP.RateLimit,
				Burst:     a.cfg.MCP.Burst,
			})
			return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
