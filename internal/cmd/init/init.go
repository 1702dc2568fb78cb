// Package init provides the init command for ibx.
package init

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/infobox-cli/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var vaultDir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize ibx configuration",
		Long: `Initialize ibx with your notes directory and rendering preferences.
The configuration will be saved to ~/.config/ibx/config.yml.`,
		Example: `  # Interactive setup
  ibx init

  # Pre-populate the vault directory
  ibx init --vault ~/notes`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(vaultDir)
		},
	}

	cmd.Flags().StringVar(&vaultDir, "vault", "", "Notes directory used to resolve image links")

	return cmd
}

func runInit(prefillVault string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		Vault:        prefillVault,
		OutputFormat: "table",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Vault directory").
				Description("Notes directory used to resolve ![[image]] links").
				Placeholder("~/notes").
				Value(&cfg.Vault),

			huh.NewInput().
				Title("Stylesheet (optional)").
				Description("Stylesheet href injected into rendered pages").
				Placeholder("infobox.css").
				Value(&cfg.Stylesheet),

			huh.NewInput().
				Title("Panel caption (optional)").
				Description("Caption for blocks that do not name their own title").
				Value(&cfg.Caption),

			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  ibx check note.md")
	fmt.Println("  ibx render note.md --out note.html")

	return nil
}
