package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// stubEventSource implements EventSource for tests
type stubEventSource struct {
	drafts []model.EntryDraft
	err    error

	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubEventSource) FetchOOOEvents(ctx context.Context, from, to time.Time) ([]model.EntryDraft, error) {
	s.gotFrom = from
	s.gotTo = to
	if s.err != nil {
		return nil, s.err
	}
	return s.drafts, nil
}

func TestImportCalendar(t *testing.T) {
	store := &mockStore{}
	source := &stubEventSource{drafts: []model.EntryDraft{
		{Name: "Alex", Start: "2024-03-05", End: "2024-03-07", Type: model.TypeVacation},
		{Name: "Sam", Start: "2024-03-12", End: "2024-03-14", Type: model.TypeVacation},
	}}

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	result, err := ImportCalendar(context.Background(), store, source, zap.NewNop(), from, to, "importer")
	require.NoError(t, err)

	assert.Equal(t, from, source.gotFrom)
	assert.Equal(t, to, source.gotTo)

	require.Len(t, result.Imported, 2)
	assert.Zero(t, result.Skipped)
	assert.Len(t, store.entries, 2)
	assert.Equal(t, "importer", store.entries[0].CreatedBy)
}

func TestImportCalendar_SkipsInvalidDrafts(t *testing.T) {
	store := &mockStore{}
	source := &stubEventSource{drafts: []model.EntryDraft{
		{Name: "Alex", Start: "2024-03-05", End: "2024-03-07", Type: model.TypeVacation},
		{Name: "", Start: "2024-03-12", End: "2024-03-14", Type: model.TypeVacation},
		{Name: "Sam", Start: "2024-03-20", End: "2024-03-14", Type: model.TypeVacation},
	}}

	result, err := ImportCalendar(context.Background(), store, source, zap.NewNop(),
		time.Now(), time.Now(), "importer")
	require.NoError(t, err)

	assert.Len(t, result.Imported, 1)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, store.entries, 1)
}

func TestImportCalendar_SourceError(t *testing.T) {
	store := &mockStore{}
	source := &stubEventSource{err: errors.New("api unavailable")}

	_, err := ImportCalendar(context.Background(), store, source, zap.NewNop(),
		time.Now(), time.Now(), "importer")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch calendar events")
	assert.Empty(t, store.entries)
}

func TestImportCalendar_NoEvents(t *testing.T) {
	store := &mockStore{}
	source := &stubEventSource{}

	result, err := ImportCalendar(context.Background(), store, source, zap.NewNop(),
		time.Now(), time.Now(), "importer")
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Zero(t, result.Skipped)
}
