// Package check provides the check command for ibx.
package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/infobox-cli/internal/config"
	"github.com/open-cli-collective/infobox-cli/internal/render"
	"github.com/open-cli-collective/infobox-cli/internal/vault"
	"github.com/open-cli-collective/infobox-cli/internal/view"
	"github.com/open-cli-collective/infobox-cli/pkg/infobox"
)

type checkOptions struct {
	output     string
	noColor    bool
	configPath string
}

// fieldReport is one parsed field of a block.
type fieldReport struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// blockReport is the parse outcome of one fenced infobox block.
type blockReport struct {
	Line          int           `json:"line"`
	Title         string        `json:"title"`
	Image         string        `json:"image,omitempty"`
	ImageResolved bool          `json:"image_resolved"`
	Fields        []fieldReport `json:"fields"`
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <document.md>",
		Short: "Inspect the infobox blocks of a document",
		Long: `Parse every fenced infobox block in a markdown document and report the
fields each block produces, along with its title and image resolution.

Malformed lines are dropped by the dialect, not reported as errors; check
shows what actually survives parsing.`,
		Example: `  # Inspect a note
  ibx check note.md

  # Machine-readable report
  ibx check note.md -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runCheck(args[0], opts, nil)
		},
	}

	return cmd
}

func runCheck(docPath string, opts *checkOptions, cfg *config.Config) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if cfg == nil {
		path := opts.configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		var err error
		cfg, err = config.LoadWithEnv(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	root := cfg.Vault
	if root == "" {
		root = filepath.Dir(docPath)
	}
	links, err := vault.Open(root)
	if err != nil {
		return err
	}

	sourcePath := filepath.Base(docPath)
	if rel, err := filepath.Rel(root, docPath); err == nil && !strings.HasPrefix(rel, "..") {
		sourcePath = filepath.ToSlash(rel)
	}

	reports := buildReports(string(data), sourcePath, links)
	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(reports)
	}

	if len(reports) == 0 {
		renderer.Warn("no infobox blocks found")
		return nil
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		renderer.RenderKeyValue("Block", fmt.Sprintf("line %d", report.Line))
		renderer.RenderKeyValue("Title", report.Title)
		if report.Image != "" {
			status := "unresolved"
			if report.ImageResolved {
				status = "resolved"
			}
			renderer.RenderKeyValue("Image", report.Image+" ("+status+")")
		}

		rows := make([][]string, 0, len(report.Fields))
		for _, f := range report.Fields {
			rows = append(rows, []string{f.Kind, f.Label, view.Truncate(f.Value, 60)})
		}
		renderer.RenderTable([]string{"KIND", "LABEL", "VALUE"}, rows)
	}
	return nil
}

// buildReports parses every block and resolves image references.
func buildReports(doc, sourcePath string, links *vault.Vault) []blockReport {
	var reports []blockReport
	for _, block := range render.FindBlocks(doc) {
		parsed := infobox.Parse(block.Source)

		report := blockReport{
			Line:  block.Line,
			Title: parsed.Title,
			Image: parsed.ImageRef,
		}
		if parsed.ImageRef != "" {
			_, report.ImageResolved = links.ResolveLink(parsed.ImageRef, sourcePath)
		}
		for _, f := range parsed.Fields {
			report.Fields = append(report.Fields, fieldReport{
				Kind:  f.Kind.String(),
				Label: f.Label,
				Value: fieldValue(f),
			})
		}
		reports = append(reports, report)
	}
	return reports
}

// fieldValue renders a field's value for the report. Tag lists show their
// split form so the chip count is visible.
func fieldValue(f infobox.Field) string {
	if f.Kind != infobox.FieldTag {
		return f.Value
	}
	tags := infobox.SplitTags(f.Value)
	return strings.Join(tags, " | ") + " (" + strconv.Itoa(len(tags)) + ")"
}
