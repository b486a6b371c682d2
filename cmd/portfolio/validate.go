package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/natejswenson/portfolio-engine/internal/content"
	"github.com/natejswenson/portfolio-engine/internal/observability"
	"github.com/natejswenson/portfolio-engine/internal/schemas"
	"github.com/natejswenson/portfolio-engine/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a content document",
	Long:  "Validates a content document against the content document schema and runs content checks over the normalized display model. Schema violations fail the command; content issues are reported but do not.",
	RunE:  runValidate,
}

var validateDocFile string

func init() {
	validateCmd.Flags().StringVarP(&validateDocFile, "doc", "d", "", "Path to content document (JSON or YAML) (required)")

	if err := validateCmd.MarkFlagRequired("doc"); err != nil {
		panic(fmt.Sprintf("failed to mark doc flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := content.LoadDocument(validateDocFile)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	schemaErr := schemas.ValidateContentDocument(data)
	if schemaErr != nil {
		var validationErr *schemas.ValidationError
		if !errors.As(schemaErr, &validationErr) {
			return fmt.Errorf("schema validation could not run: %w", schemaErr)
		}
	}

	// Content checks run on the normalized model regardless of schema
	// conformance; the mapper is total either way.
	model := content.Normalize(data)
	issues := validation.Check(model, nil)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDisplayModel(model)
	printer.PrintIssues(issues)

	if schemaErr != nil {
		return schemaErr
	}

	_, _ = fmt.Fprintf(os.Stdout, "Document conforms to the content document schema\n")
	return nil
}
