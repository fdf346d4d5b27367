package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/awayboard/awayboard/pkg/core/coverage"
	"github.com/awayboard/awayboard/pkg/core/model"
)

// Load retrieves the full entry collection, ordered by creation time.
// Coverage columns written by older clients (plain string elements) pass
// through the normalizer on the way out.
func (p *Persister) Load(ctx context.Context) ([]model.Entry, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, start_date, end_date, entry_type, notes, coverage, created_by, created_at
		FROM entry
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		var start, end, createdAt time.Time
		var entryType string
		var coverageJSON []byte
		if err := rows.Scan(&e.ID, &e.Name, &start, &end, &entryType, &e.Notes, &coverageJSON, &e.CreatedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Type = model.EntryType(entryType)
		e.Start = start.Format(model.DateLayout)
		e.End = end.Format(model.DateLayout)
		e.CreatedAt = createdAt.UTC().Format(time.RFC3339)

		var raw []coverage.RawItem
		if err := json.Unmarshal(coverageJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse coverage for entry %s: %w", e.ID, err)
		}
		e.Coverage = coverage.Normalize(raw)

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// Save replaces the stored collection with the given snapshot in a
// single transaction. Concurrent writers resolve last-write-wins, with
// no merge or conflict detection.
func (p *Persister) Save(ctx context.Context, entries []model.Entry) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM entry`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for _, e := range entries {
		coverageJSON, err := json.Marshal(coverage.FromItems(e.Coverage))
		if err != nil {
			return fmt.Errorf("failed to marshal coverage for entry %s: %w", e.ID, err)
		}

		createdAt := time.Now().UTC()
		if e.CreatedAt != "" {
			if parsed, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
				createdAt = parsed
			}
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO entry (id, name, start_date, end_date, entry_type, notes, coverage, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, e.ID, e.Name, e.Start, e.End, string(e.Type), e.Notes, coverageJSON, e.CreatedBy, createdAt)
		if err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
