// Package root provides the root command for the ibx CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/infobox-cli/internal/cmd/check"
	"github.com/open-cli-collective/infobox-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/infobox-cli/internal/cmd/init"
	"github.com/open-cli-collective/infobox-cli/internal/cmd/rendercmd"
	"github.com/open-cli-collective/infobox-cli/internal/version"
)

// NewCmdRoot creates the root command for ibx.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ibx",
		Short: "Render infobox blocks embedded in markdown notes",
		Long: `ibx parses the infobox markup dialect found in fenced code blocks of
markdown notes and renders each block as a titled attribute panel next
to its body text.

Get started by running: ibx init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/ibx/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("ibx version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(rendercmd.NewCmdRender())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(configcmd.NewCmdConfig())

	return cmd
}
