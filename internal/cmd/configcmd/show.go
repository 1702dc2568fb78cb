package configcmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/infobox-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current ibx configuration with value source indicators.`,
		Example: `  # Show current config
  ibx config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor)
		},
	}

	return cmd
}

func runShow(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Printf("%-14s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}
		fmt.Print(value)

		source := "config"
		if v := os.Getenv(envVar); v != "" && v == value {
			source = envVar
		} else if fileErr != nil || fileValue != value {
			source = "-"
		}
		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Vault", cfg.Vault, fileCfg.Vault, "IBX_VAULT")
	printField("Stylesheet", cfg.Stylesheet, fileCfg.Stylesheet, "IBX_STYLESHEET")
	printField("Caption", cfg.Caption, fileCfg.Caption, "IBX_CAPTION")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "IBX_OUTPUT_FORMAT")

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}
