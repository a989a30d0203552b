// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/jongio/azd-attach/attach"
	"github.com/jongio/azd-attach/cliout"
	"github.com/jongio/azd-attach/progress"
	"github.com/spf13/cobra"
)

const commandColumnWidth = 80

type selection struct {
	filter     string
	pythonOnly bool
}

func (s *selection) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.filter, "filter", "f", "", "Only show processes whose name, command line or pid contains this text")
	cmd.Flags().BoolVar(&s.pythonOnly, "python", false, "Only show python processes")
}

func (s *selection) apply(items []attach.AttachItem) []attach.AttachItem {
	if s.pythonOnly {
		items = attach.PythonOnly(items)
	}
	return attach.Filter(items, s.filter)
}

type listOutput struct {
	Lister  string              `json:"lister,omitempty"`
	Command string              `json:"command,omitempty"`
	Count   int                 `json:"count"`
	Items   []attach.AttachItem `json:"items"`
}

func newListCommand(a *App) *cobra.Command {
	var (
		sel         selection
		showCommand bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List processes a debugger can attach to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lister, items, err := listItems(cmd.Context(), a.provider())
			if err != nil {
				return err
			}

			var out listOutput
			if showCommand {
				out.Lister = lister.Name
				out.Command = lister.Command.String()
			}
			out.Items = sel.apply(items)
			out.Count = len(out.Items)

			return cliout.Print(out, func() {
				if showCommand {
					cliout.Label("Lister", out.Lister)
					cliout.Label("Command", out.Command)
					cliout.Newline()
				}
				printItems(out.Items)
			})
		},
	}
	sel.register(cmd)
	cmd.Flags().BoolVar(&showCommand, "show-command", false, "Show which command produced the list")
	return cmd
}

// listItems lists once, returning the Lister that produced the items.
func listItems(ctx context.Context, provider *attach.Provider) (attach.Lister, []attach.AttachItem, error) {
	var lister attach.Lister
	items, err := progress.Run(os.Stderr, "Listing processes", func() ([]attach.AttachItem, error) {
		used, items, err := provider.List(ctx)
		lister = used
		return items, err
	})
	return lister, items, err
}

func printItems(items []attach.AttachItem) {
	if len(items) == 0 {
		cliout.Info("No matching processes")
		return
	}

	rows := make([]cliout.TableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, cliout.TableRow{
			"PID":     strconv.Itoa(item.PID),
			"NAME":    item.Label,
			"COMMAND": cliout.Truncate(item.Detail, commandColumnWidth),
		})
	}
	cliout.Table([]string{"PID", "NAME", "COMMAND"}, rows)
}
