// Package store owns the in-memory entry collection and mirrors it to a
// persistence backend. The Store is the single holder of mutable state:
// every other component receives snapshots or writes back through it.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// Persister mirrors the whole entry collection to durable storage.
// Semantics are last-write-wins at collection granularity: Save replaces
// whatever was stored before, with no merge or conflict detection.
type Persister interface {
	Load(ctx context.Context) ([]model.Entry, error)
	Save(ctx context.Context, entries []model.Entry) error
}

// Store holds the entry collection in memory and schedules asynchronous
// writes to the persister after every mutation. Persistence is
// fire-and-forget: failures are logged, never retried, never surfaced.
// The in-memory state stays authoritative for the session either way.
type Store struct {
	mu        sync.Mutex
	entries   []model.Entry
	persister Persister
	logger    *zap.Logger
	pending   sync.WaitGroup

	// saveMu serializes Save calls; saveSeq/savedSeq keep snapshots in
	// program order so a stale snapshot never overwrites a fresher one.
	saveMu   sync.Mutex
	saveSeq  uint64
	savedSeq uint64
}

// New creates a store backed by the given persister and loads the
// persisted collection once. A load failure degrades to an empty
// in-memory session rather than failing: the warning is logged and the
// store starts fresh.
func New(ctx context.Context, persister Persister, logger *zap.Logger) *Store {
	s := &Store{
		persister: persister,
		logger:    logger,
	}

	entries, err := persister.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load persisted entries, starting with an empty collection", zap.Error(err))
		return s
	}

	s.entries = entries
	logger.Debug("Loaded persisted entries", zap.Int("count", len(entries)))
	return s
}

// Insert appends an entry to the collection and schedules a persist
func (s *Store) Insert(entry model.Entry) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	s.schedulePersist()
}

// Remove deletes the entry with the given id along with all its coverage
// items and tasks. Removing an absent id is a no-op, not an error.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	removed := false
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.schedulePersist()
	}
	return removed
}

// Update replaces the entry with the given id, preserving its identifier.
// When the id is not found the collection is left unchanged and ok is
// false; stale ids after a concurrent deletion are silent no-ops.
func (s *Store) Update(id string, entry model.Entry) (model.Entry, bool) {
	s.mu.Lock()
	updated := false
	for i := range s.entries {
		if s.entries[i].ID == id {
			entry.ID = id
			s.entries[i] = entry
			updated = true
			break
		}
	}
	s.mu.Unlock()

	if updated {
		s.schedulePersist()
	}
	return entry, updated
}

// Get returns the entry with the given id
func (s *Store) Get(id string) (model.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return model.Entry{}, false
}

// List returns a snapshot of the collection in insertion order. The
// snapshot is safe to hand out because all entry mutations go through
// copy-on-write replacement, never in-place edits.
func (s *Store) List() []model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.Entry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Flush waits for all scheduled persists to finish. Called before
// process exit so the last mutation reaches the backend.
func (s *Store) Flush() {
	s.pending.Wait()
}

// schedulePersist writes the current snapshot to the persister in the
// background. Each mutation persists the full collection. Snapshots are
// numbered under the state lock and written under saveMu, and a
// snapshot older than one already written is dropped, so the backend
// always ends up holding the program-order latest state.
func (s *Store) schedulePersist() {
	s.mu.Lock()
	snapshot := make([]model.Entry, len(s.entries))
	copy(snapshot, s.entries)
	s.saveSeq++
	seq := s.saveSeq
	s.mu.Unlock()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if seq <= s.savedSeq {
			return
		}
		if err := s.persister.Save(context.Background(), snapshot); err != nil {
			s.logger.Warn("Failed to persist entries", zap.Error(err), zap.Int("count", len(snapshot)))
			return
		}
		s.savedSeq = seq
	}()
}
