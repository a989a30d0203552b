// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jongio/azd-attach/cliout"
	"github.com/jongio/azd-attach/logutil"
	"github.com/spf13/cobra"
)

func newPickCommand(a *App) *cobra.Command {
	var (
		pythonOnly bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "pick <query>",
		Short: "Print the best attach candidate matching a query",
		Long: `Pick lists processes, keeps those whose name, command line or pid contains the
query, and prints the highest ranked one. The process must still be running.`,
		Example: `  azd-attach pick manage.py
  azd-attach pick --python -q runserver`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := selection{filter: args[0], pythonOnly: pythonOnly}

			_, items, err := listItems(cmd.Context(), a.provider())
			if err != nil {
				return err
			}
			items = sel.apply(items)
			if len(items) == 0 {
				return fmt.Errorf("no process matches %q", args[0])
			}

			picked := items[0]
			if !a.isRunning(picked.PID) {
				return fmt.Errorf("process %d (%s) exited before it could be picked", picked.PID, picked.ProcessName)
			}

			if cliout.IsJSON() {
				return cliout.PrintJSON(picked)
			}
			if quiet {
				fmt.Println(picked.ID)
				return nil
			}

			cliout.Success("Picked %s (pid %d)", picked.Label, picked.PID)
			cliout.Label("Command", picked.Detail)
			if info, err := a.inspect(cmd.Context(), picked.PID); err != nil {
				logutil.Debug("could not inspect picked process", "pid", picked.PID, "error", err)
			} else {
				if !info.CreateTime.IsZero() {
					cliout.Label("Started", humanize.Time(info.CreateTime))
				}
				if info.Status != "" {
					cliout.Label("Status", info.Status)
				}
			}
			if len(items) > 1 {
				cliout.Hint(fmt.Sprintf("%d other matches", len(items)-1), "Use a longer query to narrow the match")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pythonOnly, "python", false, "Only consider python processes")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the pid")
	return cmd
}
