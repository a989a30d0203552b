// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"os"
	"os/signal"

	"github.com/jongio/azd-attach/attach"
	"github.com/jongio/azd-attach/cliout"
	"github.com/jongio/azd-attach/config"
	"github.com/jongio/azd-attach/logutil"
	"github.com/jongio/azd-attach/watch"
	"github.com/spf13/cobra"
)

func newWatchCommand(a *App) *cobra.Command {
	var sel selection

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show processes as they start and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			cfg := a.cfg.Watch
			if cfg.MetricsPort > 0 {
				go func() {
					if err := watch.ServeMetrics(ctx, cfg.MetricsPort); err != nil {
						logutil.Error("metrics server failed", "port", cfg.MetricsPort, "error", err)
					}
				}()
			}

			w := watch.New(a.provider(), watch.Options{
				Interval:        cfg.Interval,
				RateLimit:       cfg.RateLimit,
				BreakerFailures: cfg.BreakerFailures,
				BreakerTimeout:  cfg.BreakerTimeout,
				Filter:          sel.apply,
			})

			if !cliout.IsJSON() {
				cliout.Hint("Press Ctrl+C to stop")
			}
			return w.Run(ctx, printSnapshot)
		},
	}
	sel.register(cmd)
	config.RegisterWatchFlags(cmd.Flags())
	return cmd
}

func printSnapshot(s watch.Snapshot) {
	if cliout.IsJSON() {
		if s.Err != nil {
			_ = cliout.PrintJSON(map[string]any{"seq": s.Seq, "time": s.Time, "error": s.Err.Error()})
			return
		}
		_ = cliout.PrintJSON(s)
		return
	}

	if s.Err != nil {
		cliout.Warning("Refresh %d failed: %v", s.Seq, s.Err)
		return
	}
	if s.Initial {
		cliout.Info("Watching %d processes", len(s.Items))
		return
	}
	for _, item := range s.Added {
		cliout.Added("%s", describe(item))
	}
	for _, item := range s.Removed {
		cliout.Removed("%s", describe(item))
	}
}

func describe(item attach.AttachItem) string {
	return item.Label + " " + cliout.Muted("(pid %s)", item.Description) + " " + cliout.Truncate(item.Detail, commandColumnWidth)
}
