// Package pipeline runs a profile against a collection of job postings,
// scoring each pair at most once per ledger.
package pipeline

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxLoggedTitle bounds posting titles copied into log fields.
const maxLoggedTitle = 80

// Progress steps reported to OnProgress.
const (
	StepScored   = "scored"
	StepExisting = "existing"
	StepSkipped  = "skipped"
)

// ProgressEvent reports what happened to one job posting during a pass.
type ProgressEvent struct {
	Step    string `json:"step"`
	JobID   string `json:"job_id"`
	Message string `json:"message,omitempty"`
	Score   int    `json:"score,omitempty"`
}

// ProgressCallback is called once per job handled. It may be called from
// several goroutines during Run.
type ProgressCallback func(event ProgressEvent)

// Orchestrator scores a profile against job postings idempotently.
type Orchestrator struct {
	// Ledger defaults to an in-memory ledger created on first use.
	Ledger Ledger
	Scorer ranking.Scorer
	Logger *zap.Logger
	// Workers bounds the goroutines used by Run. Zero means GOMAXPROCS.
	Workers int
	// Refresh recomputes every pair and overwrites stored results.
	Refresh    bool
	OnProgress ProgressCallback

	once sync.Once
}

// NewOrchestrator returns an orchestrator over ledger.
func NewOrchestrator(ledger Ledger, log *zap.Logger) *Orchestrator {
	return &Orchestrator{Ledger: ledger, Logger: log}
}

func (o *Orchestrator) init() {
	o.once.Do(func() {
		if o.Ledger == nil {
			o.Ledger = NewMemoryLedger()
		}
		o.Logger = logger.OrNop(o.Logger)
	})
}

// Matches lazily scores profile against jobs in order, yielding the results
// this pass stored. Pairs already in the ledger are skipped, as are repeated
// job ids. Iteration stops when the consumer stops or ctx is done; ledger
// errors are yielded and iteration continues if the consumer asks for more.
func (o *Orchestrator) Matches(ctx context.Context, profile types.ResumeProfile, jobs []types.JobPosting) iter.Seq2[types.MatchResult, error] {
	o.init()
	return func(yield func(types.MatchResult, error) bool) {
		seen := make(map[string]bool, len(jobs))
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				yield(types.MatchResult{}, err)
				return
			}
			if job.ID != "" && seen[job.ID] {
				continue
			}
			seen[job.ID] = true

			result, stored, err := o.match(ctx, profile, job)
			if err != nil {
				if !yield(types.MatchResult{}, err) {
					return
				}
				continue
			}
			if stored && !yield(result, nil) {
				return
			}
		}
	}
}

// Run scores profile against jobs in parallel and returns the newly stored
// results, ranked. The first ledger error cancels the pass.
func (o *Orchestrator) Run(ctx context.Context, profile types.ResumeProfile, jobs []types.JobPosting) ([]types.MatchResult, error) {
	o.init()

	unique := uniqueJobs(jobs)
	slots := make([]*types.MatchResult, len(unique))

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range unique {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, stored, err := o.match(gCtx, profile, job)
			if err != nil {
				return err
			}
			if stored {
				slots[i] = &result
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]types.MatchResult, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	ranking.Rank(results)

	o.Logger.Info("match pass complete",
		zap.String(logger.FieldProfileID, profile.ID),
		zap.Int("jobs", len(unique)),
		zap.Int("stored", len(results)),
		zap.Bool("refresh", o.Refresh))
	return results, nil
}

// match scores one pair and records it. stored is false when the ledger
// already held the pair or the job could not be identified.
func (o *Orchestrator) match(ctx context.Context, profile types.ResumeProfile, job types.JobPosting) (result types.MatchResult, stored bool, err error) {
	log := o.Logger.With(zap.String(logger.FieldProfileID, profile.ID), zap.String(logger.FieldJobID, job.ID))

	if job.ID == "" {
		log.Warn("job posting has no id, skipping", zap.String("title", logger.TruncateForLog(job.Title, maxLoggedTitle)))
		o.progress(ProgressEvent{Step: StepSkipped, Message: "missing id"})
		return result, false, nil
	}

	key := types.MatchKey{ProfileID: profile.ID, JobID: job.ID}
	if !o.Refresh {
		exists, err := o.Ledger.Has(ctx, key)
		if err != nil {
			return result, false, fmt.Errorf("failed to check match ledger for job %s: %w", job.ID, err)
		}
		if exists {
			log.Debug("match already recorded")
			o.progress(ProgressEvent{Step: StepExisting, JobID: job.ID})
			return result, false, nil
		}
	}

	result = o.Scorer.Score(profile, job)

	if o.Refresh {
		if err := o.Ledger.Replace(ctx, result); err != nil {
			return result, false, fmt.Errorf("failed to replace match for job %s: %w", job.ID, err)
		}
	} else {
		inserted, err := o.Ledger.Insert(ctx, result)
		if err != nil {
			return result, false, fmt.Errorf("failed to record match for job %s: %w", job.ID, err)
		}
		if !inserted {
			// another pass stored the pair between Has and Insert
			log.Debug("match recorded concurrently")
			o.progress(ProgressEvent{Step: StepExisting, JobID: job.ID})
			return result, false, nil
		}
	}

	log.Debug("match scored", zap.Int("score", result.MatchScore))
	o.progress(ProgressEvent{Step: StepScored, JobID: job.ID, Score: result.MatchScore})
	return result, true, nil
}

func (o *Orchestrator) progress(e ProgressEvent) {
	if o.OnProgress != nil {
		o.OnProgress(e)
	}
}

// uniqueJobs drops postings whose id was already seen, keeping the first.
// Postings without an id are kept so that match can report them.
func uniqueJobs(jobs []types.JobPosting) []types.JobPosting {
	seen := make(map[string]bool, len(jobs))
	out := make([]types.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != "" && seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		out = append(out, j)
	}
	return out
}
