package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Has reports whether a result exists for the (profile, job) pair.
func (db *DB) Has(ctx context.Context, key types.MatchKey) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM match_results WHERE profile_id = $1 AND job_id = $2)`,
		key.ProfileID, key.JobID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check match %s/%s: %w", key.ProfileID, key.JobID, err)
	}
	return exists, nil
}

// Insert stores result unless the pair already has one. The unique
// constraint makes this atomic across concurrent writers.
func (db *DB) Insert(ctx context.Context, result types.MatchResult) (bool, error) {
	content, err := encodeResult(result)
	if err != nil {
		return false, err
	}

	tag, err := db.pool.Exec(ctx,
		`INSERT INTO match_results (id, profile_id, job_id, match_score, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (profile_id, job_id) DO NOTHING`,
		uuid.New(), result.ProfileID, result.JobID, result.MatchScore, content,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert match %s/%s: %w", result.ProfileID, result.JobID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// Replace stores result, overwriting any existing result for the pair.
func (db *DB) Replace(ctx context.Context, result types.MatchResult) error {
	content, err := encodeResult(result)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results (id, profile_id, job_id, match_score, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (profile_id, job_id) DO UPDATE SET match_score = $4, content = $5, updated_at = NOW()`,
		uuid.New(), result.ProfileID, result.JobID, result.MatchScore, content,
	)
	if err != nil {
		return fmt.Errorf("failed to replace match %s/%s: %w", result.ProfileID, result.JobID, err)
	}
	return nil
}

// ListMatches returns a profile's stored results, highest score first with
// ties ordered by job id.
func (db *DB) ListMatches(ctx context.Context, profileID string) ([]types.MatchResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT content FROM match_results
		 WHERE profile_id = $1
		 ORDER BY match_score DESC, job_id ASC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	results := []types.MatchResult{}
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		r, err := decodeResult(content)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return results, nil
}

// DeleteMatches removes all results for a profile and returns the count.
func (db *DB) DeleteMatches(ctx context.Context, profileID string) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM match_results WHERE profile_id = $1`, profileID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches: %w", err)
	}
	return tag.RowsAffected(), nil
}

func encodeResult(r types.MatchResult) ([]byte, error) {
	if r.ProfileID == "" || r.JobID == "" {
		return nil, fmt.Errorf("match result needs both profile and job id")
	}
	content, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match: %w", err)
	}
	return content, nil
}

func decodeResult(content []byte) (types.MatchResult, error) {
	var r types.MatchResult
	if err := json.Unmarshal(content, &r); err != nil {
		return r, fmt.Errorf("failed to decode match: %w", err)
	}
	if r.MatchReasons == nil {
		r.MatchReasons = []string{}
	}
	if r.SkillsMatch.Matched == nil {
		r.SkillsMatch.Matched = []string{}
	}
	if r.SkillsMatch.Missing == nil {
		r.SkillsMatch.Missing = []string{}
	}
	return r, nil
}
