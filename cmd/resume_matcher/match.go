package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/export"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/schemas"
)

var _ pipeline.Ledger = (*db.DB)(nil)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank a profile against a file of job postings",
	Long: "Score a ResumeProfile against every posting in a jobs file and write the ranked MatchResults. " +
		"Pairs already scored are not scored again unless --refresh is set; with a database URL the results persist across runs.",
	RunE: runMatch,
}

var (
	matchProfile string
	matchJobs    string
	matchOut     string
	matchXLSX    string
	matchRefresh bool
	matchVerbose bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to a profile JSON file (required)")
	matchCmd.Flags().StringVar(&matchJobs, "jobs", "", "Path to a job postings JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Path to output JSON file (default stdout)")
	matchCmd.Flags().StringVar(&matchXLSX, "xlsx", "", "Also write an Excel report to this path")
	matchCmd.Flags().BoolVar(&matchRefresh, "refresh", false, "Rescore pairs that were already stored")
	matchCmd.Flags().Int("workers", 0, "Concurrent scoring workers (default GOMAXPROCS)")
	matchCmd.Flags().String("database-url", "", "Postgres URL for persistent results (overrides DATABASE_URL)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print the top matches to stderr")
	_ = matchCmd.MarkFlagRequired("profile")
	_ = matchCmd.MarkFlagRequired("jobs")

	mustBind("workers", matchCmd.Flags().Lookup("workers"))
	mustBind("database_url", matchCmd.Flags().Lookup("database-url"))

	rootCmd.AddCommand(matchCmd)
}

// matchStore pairs a ledger with a reader for everything it holds for a profile.
type matchStore struct {
	ledger pipeline.Ledger
	list   func(ctx context.Context, profileID string) ([]types.MatchResult, error)
	close  func()
}

func openMatchStore(ctx context.Context, p types.ResumeProfile) (*matchStore, error) {
	if cfg.DatabaseURL == "" {
		mem := pipeline.NewMemoryLedger()
		return &matchStore{
			ledger: mem,
			list: func(_ context.Context, profileID string) ([]types.MatchResult, error) {
				return mem.Results(profileID), nil
			},
			close: func() {},
		}, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	if err := database.SaveProfile(ctx, p); err != nil {
		database.Close()
		return nil, err
	}
	return &matchStore{ledger: database, list: database.ListMatches, close: database.Close}, nil
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	p, err := readProfile(matchProfile)
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	loaded, err := ingestion.LoadJobPostingsFile(matchJobs, ingestion.LoadOptions{Taxonomy: tax})
	if err != nil {
		return err
	}
	for _, s := range loaded.Skipped {
		log.Warn("skipping job posting", zap.String(logger.FieldJobID, s.JobID), zap.String("reason", s.Reason))
	}

	store, err := openMatchStore(ctx, p)
	if err != nil {
		return err
	}
	defer store.close()

	orch := pipeline.NewOrchestrator(store.ledger, log)
	orch.Scorer = ranking.Scorer{Taxonomy: tax}
	orch.Workers = cfg.Workers
	orch.Refresh = matchRefresh
	orch.OnProgress = func(e pipeline.ProgressEvent) {
		log.Debug("job handled",
			zap.String("step", e.Step),
			zap.String(logger.FieldJobID, e.JobID),
			zap.Int("score", e.Score))
	}

	scored, err := orch.Run(ctx, p, loaded.Jobs)
	if err != nil {
		return fmt.Errorf("failed to match jobs: %w", err)
	}

	stored, err := store.list(ctx, p.ID)
	if err != nil {
		return err
	}
	results := forJobs(stored, loaded.Jobs)
	ranking.Rank(results)

	log.Info("matching complete",
		zap.String(logger.FieldProfileID, p.ID),
		zap.Int("postings", len(loaded.Jobs)),
		zap.Int("scored", len(scored)),
		zap.Int("results", len(results)),
		zap.Int("skipped", len(loaded.Skipped)))

	doc := types.MatchResults{ProfileID: p.ID, Results: results, Skipped: loaded.Skipped}
	if err := writeJSON(matchOut, cmd.OutOrStdout(), doc, schemas.MatchResults); err != nil {
		return err
	}

	if matchXLSX != "" {
		path, err := export.WriteMatchesXLSX(matchXLSX, export.Report{
			Profile:     p,
			Jobs:        loaded.Jobs,
			Results:     results,
			Skipped:     loaded.Skipped,
			GeneratedAt: time.Now(),
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Report: %s\n", path)
	}

	if matchVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintMatches(results, loaded.Jobs)
		printer.PrintSkipped(loaded.Skipped)
	}
	return nil
}

// forJobs keeps the stored results that belong to one of jobs.
func forJobs(results []types.MatchResult, jobs []types.JobPosting) []types.MatchResult {
	ids := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		ids[j.ID] = true
	}
	out := make([]types.MatchResult, 0, len(results))
	for _, r := range results {
		if ids[r.JobID] {
			out = append(out, r)
		}
	}
	return out
}
