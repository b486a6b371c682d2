// Package main implements the portfolio CLI for rendering and checking
// portfolio sites from structured content documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site generator",
	Long:  "Portfolio renders a personal portfolio/resume site from a structured content document, with schema validation, content checks, and skill-block markdown parsing.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
