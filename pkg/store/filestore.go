package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awayboard/awayboard/pkg/core/coverage"
	"github.com/awayboard/awayboard/pkg/core/model"
)

// storedEntry is the persisted shape of an entry. Coverage decodes
// through the raw variant so files written before coverage items were
// structured (plain strings) still load; normalization converges them to
// the canonical shape on read.
type storedEntry struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Start     string             `json:"start"`
	End       string             `json:"end"`
	Type      model.EntryType    `json:"type"`
	Notes     string             `json:"notes,omitempty"`
	Coverage  []coverage.RawItem `json:"coverage,omitempty"`
	CreatedBy string             `json:"created_by,omitempty"`
	CreatedAt string             `json:"created_at,omitempty"`
}

// FilePersister mirrors the entry collection to a single JSON file slot
type FilePersister struct {
	path string
}

// NewFilePersister creates a persister writing to the given file path
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Load reads the whole collection from the file. A missing file is an
// empty collection, not an error.
func (p *FilePersister) Load(ctx context.Context) ([]model.Entry, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read entries file: %w", err)
	}

	var stored []storedEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse entries file: %w", err)
	}

	entries := make([]model.Entry, len(stored))
	for i, se := range stored {
		entries[i] = model.Entry{
			ID:        se.ID,
			Name:      se.Name,
			Start:     se.Start,
			End:       se.End,
			Type:      se.Type,
			Notes:     se.Notes,
			Coverage:  coverage.Normalize(se.Coverage),
			CreatedBy: se.CreatedBy,
			CreatedAt: se.CreatedAt,
		}
	}
	return entries, nil
}

// Save writes the whole collection to the file, replacing its previous
// contents. The write goes through a temp file and a rename so a crash
// mid-write never leaves a truncated slot.
func (p *FilePersister) Save(ctx context.Context, entries []model.Entry) error {
	stored := make([]storedEntry, len(entries))
	for i, entry := range entries {
		stored[i] = storedEntry{
			ID:        entry.ID,
			Name:      entry.Name,
			Start:     entry.Start,
			End:       entry.End,
			Type:      entry.Type,
			Notes:     entry.Notes,
			Coverage:  coverage.FromItems(entry.Coverage),
			CreatedBy: entry.CreatedBy,
			CreatedAt: entry.CreatedAt,
		}
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write entries file: %w", err)
	}

	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("failed to replace entries file: %w", err)
	}

	return nil
}
