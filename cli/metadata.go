// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Metadata describes the command tree for azd.
type Metadata struct {
	SchemaVersion string            `json:"schemaVersion"`
	ID            string            `json:"id"`
	Commands      []CommandMetadata `json:"commands"`
}

// CommandMetadata describes a single command.
type CommandMetadata struct {
	Name        []string          `json:"name"`
	Short       string            `json:"short"`
	Usage       string            `json:"usage,omitempty"`
	Flags       []FlagMetadata    `json:"flags,omitempty"`
	Subcommands []CommandMetadata `json:"subcommands,omitempty"`
}

// FlagMetadata describes a command flag.
type FlagMetadata struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

func newMetadataCommand(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "metadata",
		Short:  "Generate extension metadata",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(GenerateMetadata(root), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal metadata: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// GenerateMetadata introspects the visible commands under root.
func GenerateMetadata(root *cobra.Command) *Metadata {
	return &Metadata{
		SchemaVersion: "1.0",
		ID:            ExtensionID,
		Commands:      generateCommands(root, nil),
	}
}

func generateCommands(cmd *cobra.Command, path []string) []CommandMetadata {
	var commands []CommandMetadata
	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}

		name := append(append([]string{}, path...), child.Name())
		meta := CommandMetadata{
			Name:  name,
			Short: child.Short,
			Usage: child.UseLine(),
		}
		child.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if f.Hidden {
				return
			}
			meta.Flags = append(meta.Flags, FlagMetadata{
				Name:        f.Name,
				Shorthand:   f.Shorthand,
				Description: f.Usage,
				Type:        f.Value.Type(),
				Default:     f.DefValue,
			})
		})
		meta.Subcommands = generateCommands(child, name)
		commands = append(commands, meta)
	}
	return commands
}
