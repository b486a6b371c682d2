package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/natejswenson/portfolio-engine/internal/content"
	"github.com/natejswenson/portfolio-engine/internal/observability"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the normalized display model for a content document",
	RunE:  runInspect,
}

var inspectDocFile string

func init() {
	inspectCmd.Flags().StringVarP(&inspectDocFile, "doc", "d", "", "Path to content document (JSON or YAML) (required)")

	if err := inspectCmd.MarkFlagRequired("doc"); err != nil {
		panic(fmt.Sprintf("failed to mark doc flag as required: %v", err))
	}

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, _ []string) error {
	data, err := content.LoadDocument(inspectDocFile)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	model := content.Normalize(data)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDisplayModel(model)
	printer.PrintSkillTree("SKILLS", model.Skills)
	printer.PrintSkillTree("TOOLS", model.Tools)

	return nil
}
