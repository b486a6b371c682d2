package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/natejswenson/portfolio-engine/internal/config"
	"github.com/natejswenson/portfolio-engine/internal/content"
	"github.com/natejswenson/portfolio-engine/internal/icons"
	"github.com/natejswenson/portfolio-engine/internal/observability"
	"github.com/natejswenson/portfolio-engine/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a portfolio page from a content document",
	Long:  "Loads a content document (JSON or YAML), normalizes it into a display model, and renders the portfolio HTML page.",
	RunE:  runRender,
}

var (
	renderDocFile      string
	renderOutputFile   string
	renderTemplateFile string
	renderConfigFile   string
	renderVerbose      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderDocFile, "doc", "d", "", "Path to content document (JSON or YAML)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to write rendered HTML to (required)")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to page template override")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a display model summary while rendering")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Document: renderDocFile,
		Template: renderTemplateFile,
		Output:   renderOutputFile,
		Verbose:  renderVerbose,
	}

	if renderConfigFile != "" {
		fileCfg, err := config.LoadConfig(renderConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	if cfg.Document == "" {
		return fmt.Errorf("no content document given: use --doc or set 'document' in the config file")
	}
	if cfg.Output == "" {
		return fmt.Errorf("no output path given: use --out or set 'output' in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := content.LoadDocument(cfg.Document)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	model := content.Normalize(data)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintDisplayModel(model)
		printer.PrintSkillTree("SKILLS", model.Skills)
		printer.PrintSkillTree("TOOLS", model.Tools)
	}

	html, err := rendering.RenderHTML(model, icons.NewResolver(nil), cfg.Template)
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	outputDir := filepath.Dir(cfg.Output)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(cfg.Output, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered portfolio page\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", cfg.Output)

	return nil
}
