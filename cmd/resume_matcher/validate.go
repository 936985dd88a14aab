package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	internalschemas "github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long: "Validate a JSON document against a JSON Schema file, or against one of the built-in schemas by name (" +
		schemas.ResumeProfile + ", " + schemas.MatchResult + ", " + schemas.MatchResults + ", " + schemas.JobPosting + ").",
	RunE: runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema file path or built-in schema name (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to the JSON document (required)")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if _, statErr := os.Stat(validateSchema); statErr == nil {
		err = internalschemas.ValidateJSON(validateSchema, validateJSON)
	} else {
		content, getErr := schemas.Get(validateSchema)
		if getErr != nil {
			return fmt.Errorf("schema %s is neither a file nor a built-in schema", validateSchema)
		}
		data, readErr := os.ReadFile(validateJSON)
		if readErr != nil {
			return fmt.Errorf("failed to read JSON file: %w", readErr)
		}
		err = internalschemas.ValidateJSONString(content, string(data))
	}

	var validationErr *internalschemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed:\n%s", validationErr.Error())
		return fmt.Errorf("%s does not match %s", validateJSON, validateSchema)
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
