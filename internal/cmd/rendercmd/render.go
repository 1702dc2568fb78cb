// Package rendercmd provides the render command for ibx.
package rendercmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/infobox-cli/internal/config"
	"github.com/open-cli-collective/infobox-cli/internal/render"
	"github.com/open-cli-collective/infobox-cli/internal/vault"
)

type renderOptions struct {
	out        string
	preview    bool
	configPath string
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <document.md>",
		Short: "Render a markdown document with its infobox blocks",
		Long: `Render a markdown document to HTML, replacing each fenced infobox
block with a titled attribute panel alongside the block's body text.`,
		Example: `  # Render to stdout
  ibx render note.md

  # Render to a file
  ibx render note.md --out note.html

  # Show the result as markdown in the terminal
  ibx render note.md --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runRender(args[0], opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "O", "", "Write the HTML page to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Convert the rendered page back to markdown for terminal display")

	return cmd
}

// runRender renders one document. cfg may be injected for testing; when nil
// the configured (or default) config file is loaded.
func runRender(docPath string, opts *renderOptions, cfg *config.Config) error {
	var err error
	if cfg == nil {
		cfg, err = loadConfig(opts.configPath)
		if err != nil {
			return err
		}
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	r, sourcePath, err := newRenderer(cfg, docPath)
	if err != nil {
		return err
	}

	var sheet *render.Stylesheet
	if cfg.Stylesheet != "" {
		sheet = &render.Stylesheet{Href: cfg.Stylesheet}
	}

	page, err := r.Page(context.Background(), string(data), sourcePath, sheet)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	if opts.preview {
		markdown, err := htmltomarkdown.ConvertString(page)
		if err != nil {
			return fmt.Errorf("failed to convert preview: %w", err)
		}
		fmt.Println(markdown)
		return nil
	}

	if opts.out == "" || opts.out == "-" {
		fmt.Print(page)
		return nil
	}
	if err := os.WriteFile(opts.out, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadConfig loads and validates the config from path, falling back to the
// default location.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newRenderer builds the renderer and the vault-relative source path for a
// document. Without a configured vault the document's directory serves as
// the link-resolution root.
func newRenderer(cfg *config.Config, docPath string) (*render.Renderer, string, error) {
	root := cfg.Vault
	if root == "" {
		root = filepath.Dir(docPath)
	}
	v, err := vault.Open(root)
	if err != nil {
		return nil, "", err
	}

	sourcePath := filepath.Base(docPath)
	if rel, err := filepath.Rel(root, docPath); err == nil && !strings.HasPrefix(rel, "..") {
		sourcePath = filepath.ToSlash(rel)
	}

	r := &render.Renderer{
		RichText: render.Goldmark{},
		Links:    v,
		Caption:  cfg.Caption,
	}
	return r, sourcePath, nil
}
