package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/profile"
	"github.com/jonathan/resume-matcher/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a plain-text résumé",
	Long:  "Extract a ResumeProfile JSON document from a plain-text résumé. Extraction never fails on content: missing fields are left empty.",
	RunE:  runExtract,
}

var (
	extractResume  string
	extractOut     string
	extractVerbose bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to the plain-text résumé (required)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Path to output JSON file (default stdout)")
	extractCmd.Flags().String("ner", "", "Entity recognizer: none, huggingface or gemini")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a readable summary of the profile to stderr")
	_ = extractCmd.MarkFlagRequired("resume")

	mustBind("ner.provider", extractCmd.Flags().Lookup("ner"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	text, meta, err := ingestion.ReadResumeText(extractResume)
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	recognizer, closeRecognizer, err := newRecognizer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRecognizer()

	assembler := profile.NewAssembler(extraction.DefaultSet(tax), log)
	assembler.Options = cfg.Extraction
	assembler.Recognizer = recognizer

	p := assembler.Assemble(ctx, text)
	log.Info("profile extracted",
		zap.String(logger.FieldProfileID, p.ID),
		zap.String("source", meta.Source),
		zap.String("hash", meta.Hash),
		zap.Int("skills", len(p.Skills)),
		zap.Int("years_of_experience", p.YearsOfExperience))

	if err := writeJSON(extractOut, cmd.OutOrStdout(), p, schemas.ResumeProfile); err != nil {
		return err
	}
	if extractVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintProfile(&p)
	}
	if extractOut != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Output: %s\n", extractOut)
	}
	return nil
}
