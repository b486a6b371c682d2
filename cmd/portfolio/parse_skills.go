package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/natejswenson/portfolio-engine/internal/markdown"
)

var parseSkillsCmd = &cobra.Command{
	Use:   "parse-skills",
	Short: "Parse a skill-block markdown file into normalized skill entries",
	Long:  "Parses a skill-block markdown file (level-1/level-2 headers with icon annotations) into normalized skill entry JSON, fixing known typos and synthesizing placeholder descriptions.",
	RunE:  runParseSkills,
}

var (
	parseInputFile  string
	parseOutputFile string
)

func init() {
	parseSkillsCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to input skill-block markdown file (required)")
	parseSkillsCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output skill entry JSON file (required)")

	if err := parseSkillsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := parseSkillsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseSkillsCmd)
}

func runParseSkills(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to load skills file: %w", err)
	}

	entries := markdown.Parse(string(raw))

	jsonBytes, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skill entries: %w", err)
	}

	outputDir := filepath.Dir(parseOutputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed %d skill entries\n", len(entries))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)

	return nil
}
