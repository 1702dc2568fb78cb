// Package configcmd provides the config command group for ibx.
package configcmd

import "github.com/spf13/cobra"

// NewCmdConfig creates the config command with its subcommands.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ibx configuration",
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
