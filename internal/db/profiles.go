package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveProfile inserts or updates a profile keyed by its id.
func (db *DB) SaveProfile(ctx context.Context, p types.ResumeProfile) error {
	if p.ID == "" {
		return fmt.Errorf("failed to save profile: id is required")
	}
	content, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_profiles (id, name, email, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET name = $2, email = $3, content = $4, updated_at = NOW()`,
		p.ID, p.Name, p.Email, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", p.ID, err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil if none exists.
func (db *DB) GetProfile(ctx context.Context, id string) (*types.ResumeProfile, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM resume_profiles WHERE id = $1`, id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	var p types.ResumeProfile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	p.EnsureLists()
	return &p, nil
}
