package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile against a single job posting",
	Long:  "Score a ResumeProfile JSON document against one job posting and print the MatchResult. Nothing is stored.",
	RunE:  runScore,
}

var (
	scoreProfile string
	scoreJob     string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfile, "profile", "p", "", "Path to a profile JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Path to a job posting JSON file (required)")
	_ = scoreCmd.MarkFlagRequired("profile")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	p, err := readProfile(scoreProfile)
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	loaded, err := ingestion.LoadJobPostingsFile(scoreJob, ingestion.LoadOptions{Taxonomy: tax})
	if err != nil {
		return err
	}
	switch {
	case len(loaded.Jobs) == 0 && len(loaded.Skipped) > 0:
		return fmt.Errorf("job posting %s is invalid: %s", loaded.Skipped[0].JobID, loaded.Skipped[0].Reason)
	case len(loaded.Jobs) == 0:
		return fmt.Errorf("no job posting found in %s", scoreJob)
	case len(loaded.Jobs) > 1:
		return fmt.Errorf("%s holds %d postings; use the match command for more than one", scoreJob, len(loaded.Jobs))
	}

	result := ranking.Scorer{Taxonomy: tax}.Score(p, loaded.Jobs[0])
	return writeJSON("", cmd.OutOrStdout(), result, schemas.MatchResult)
}
