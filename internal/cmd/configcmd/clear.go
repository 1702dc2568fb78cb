package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/infobox-cli/internal/config"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the configuration file",
		Example: `  # Remove stored configuration
  ibx config clear`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClear(config.DefaultConfigPath())
		},
	}

	return cmd
}

func runClear(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No configuration file to remove.")
			return nil
		}
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	fmt.Printf("Removed %s\n", path)
	return nil
}
