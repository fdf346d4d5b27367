package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// mockStore implements EntryStore over a plain slice
type mockStore struct {
	entries []model.Entry
}

func (m *mockStore) Insert(entry model.Entry) {
	m.entries = append(m.entries, entry)
}

func (m *mockStore) Remove(id string) bool {
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (m *mockStore) Update(id string, entry model.Entry) (model.Entry, bool) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			entry.ID = id
			m.entries[i] = entry
			return entry, true
		}
	}
	return entry, false
}

func (m *mockStore) Get(id string) (model.Entry, bool) {
	for _, entry := range m.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return model.Entry{}, false
}

func (m *mockStore) List() []model.Entry {
	snapshot := make([]model.Entry, len(m.entries))
	copy(snapshot, m.entries)
	return snapshot
}

func validDraft() model.EntryDraft {
	return model.EntryDraft{
		Name:  "Sam",
		Start: "2024-01-10",
		End:   "2024-01-12",
		Type:  model.TypeVacation,
	}
}

func TestAddEntry_Valid(t *testing.T) {
	store := &mockStore{}
	logger := zap.NewNop()

	entry, err := AddEntry(store, logger, validDraft(), "sam")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Sam", entry.Name)
	assert.Equal(t, model.TypeVacation, entry.Type)
	assert.Equal(t, "sam", entry.CreatedBy)
	assert.NotEmpty(t, entry.CreatedAt)
	assert.Len(t, store.entries, 1)
}

func TestAddEntry_FreshUniqueIDs(t *testing.T) {
	store := &mockStore{}
	logger := zap.NewNop()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		entry, err := AddEntry(store, logger, validDraft(), "sam")
		require.NoError(t, err)
		assert.False(t, seen[entry.ID], "id %s assigned twice", entry.ID)
		seen[entry.ID] = true
	}
	assert.Len(t, store.entries, 20)
}

func TestAddEntry_StartAfterEnd(t *testing.T) {
	store := &mockStore{}
	logger := zap.NewNop()

	draft := validDraft()
	draft.Start = "2024-01-15"
	draft.End = "2024-01-12"

	_, err := AddEntry(store, logger, draft, "sam")

	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "start", vErr.Field)
	assert.Empty(t, store.entries)
}

func TestAddEntry_SameDayLeave(t *testing.T) {
	store := &mockStore{}

	draft := validDraft()
	draft.Start = "2024-01-10"
	draft.End = "2024-01-10"

	_, err := AddEntry(store, zap.NewNop(), draft, "sam")
	assert.NoError(t, err)
}

func TestAddEntry_RejectedDrafts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.EntryDraft)
	}{
		{"missing name", func(d *model.EntryDraft) { d.Name = "" }},
		{"missing start", func(d *model.EntryDraft) { d.Start = "" }},
		{"missing end", func(d *model.EntryDraft) { d.End = "" }},
		{"malformed start", func(d *model.EntryDraft) { d.Start = "10/01/2024" }},
		{"unknown type", func(d *model.EntryDraft) { d.Type = "sabbatical" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			draft := validDraft()
			tt.mutate(&draft)

			_, err := AddEntry(store, zap.NewNop(), draft, "sam")

			var vErr *model.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Empty(t, store.entries)
		})
	}
}

func TestAddEntry_EmptyTypeDefaultsToOther(t *testing.T) {
	store := &mockStore{}

	draft := validDraft()
	draft.Type = ""

	entry, err := AddEntry(store, zap.NewNop(), draft, "sam")
	require.NoError(t, err)
	assert.Equal(t, model.TypeOther, entry.Type)
}

func TestAddEntry_NormalizesDraftCoverage(t *testing.T) {
	store := &mockStore{}

	draft := validDraft()
	draft.Coverage = []model.CoverageItem{{Title: "Backlog"}}

	entry, err := AddEntry(store, zap.NewNop(), draft, "sam")
	require.NoError(t, err)

	require.Len(t, entry.Coverage, 1)
	assert.NotEmpty(t, entry.Coverage[0].ID)
}

func TestRemoveEntry(t *testing.T) {
	store := &mockStore{entries: []model.Entry{{ID: "e-1", Name: "Sam"}}}
	logger := zap.NewNop()

	assert.True(t, RemoveEntry(store, logger, "e-1"))
	assert.Empty(t, store.entries)

	// Idempotent
	assert.False(t, RemoveEntry(store, logger, "e-1"))
}

func TestUpdateEntry(t *testing.T) {
	store := &mockStore{entries: []model.Entry{{
		ID: "e-1", Name: "Sam", Start: "2024-01-10", End: "2024-01-12",
		Type: model.TypeVacation, Notes: "original",
	}}}

	newEnd := "2024-01-15"
	entry, found, err := UpdateEntry(store, zap.NewNop(), "e-1", EntryPatch{End: &newEnd})
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "e-1", entry.ID)
	assert.Equal(t, "2024-01-15", entry.End)
	// Unpatched fields are preserved
	assert.Equal(t, "Sam", entry.Name)
	assert.Equal(t, "original", entry.Notes)
}

func TestUpdateEntry_MissingIDIsSilent(t *testing.T) {
	store := &mockStore{}

	_, found, err := UpdateEntry(store, zap.NewNop(), "e-missing", EntryPatch{})
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateEntry_BreakingDateInvariant(t *testing.T) {
	store := &mockStore{entries: []model.Entry{{
		ID: "e-1", Name: "Sam", Start: "2024-01-10", End: "2024-01-12", Type: model.TypeVacation,
	}}}

	badStart := "2024-02-01"
	_, _, err := UpdateEntry(store, zap.NewNop(), "e-1", EntryPatch{Start: &badStart})

	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	// Entry is unchanged
	assert.Equal(t, "2024-01-10", store.entries[0].Start)
}

func TestListEntries_SortedByStart(t *testing.T) {
	store := &mockStore{entries: []model.Entry{
		{ID: "e-2", Name: "Sam", Start: "2024-03-10", End: "2024-03-12"},
		{ID: "e-1", Name: "Alex", Start: "2024-03-05", End: "2024-03-07"},
	}}

	entries := ListEntries(store)
	require.Len(t, entries, 2)
	assert.Equal(t, "e-1", entries[0].ID)
	assert.Equal(t, "e-2", entries[1].ID)
}
