package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Ledger records which (profile, job) pairs already have a match result.
// Implementations must make Insert atomic per key so that concurrent passes
// never store two results for the same pair.
type Ledger interface {
	Has(ctx context.Context, key types.MatchKey) (bool, error)
	// Insert stores result unless its key is present and reports whether it did.
	Insert(ctx context.Context, result types.MatchResult) (bool, error)
	// Replace stores result, overwriting any existing entry for its key.
	Replace(ctx context.Context, result types.MatchResult) error
}

// MemoryLedger is an in-process Ledger. It is safe for concurrent use.
type MemoryLedger struct {
	mu      sync.Mutex
	results map[types.MatchKey]types.MatchResult
}

// NewMemoryLedger returns an empty ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{results: make(map[types.MatchKey]types.MatchResult)}
}

func (l *MemoryLedger) Has(_ context.Context, key types.MatchKey) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.results[key]
	return ok, nil
}

func (l *MemoryLedger) Insert(_ context.Context, result types.MatchResult) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.results[result.Key()]; ok {
		return false, nil
	}
	l.results[result.Key()] = result
	return true, nil
}

func (l *MemoryLedger) Replace(_ context.Context, result types.MatchResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results[result.Key()] = result
	return nil
}

// Get returns the stored result for key.
func (l *MemoryLedger) Get(key types.MatchKey) (types.MatchResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.results[key]
	return r, ok
}

// Len returns the number of stored results.
func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.results)
}

// Results returns the stored results for a profile ordered by job id.
func (l *MemoryLedger) Results(profileID string) []types.MatchResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := []types.MatchResult{}
	for k, r := range l.results {
		if k.ProfileID == profileID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobID < out[j].JobID })
	return out
}
