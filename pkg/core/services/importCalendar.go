package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// EventSource fetches out-of-office events for a time range and maps
// them to entry drafts. The Google Calendar client implements it; tests
// use a stub.
type EventSource interface {
	FetchOOOEvents(ctx context.Context, from, to time.Time) ([]model.EntryDraft, error)
}

// ImportResult summarises one calendar import run
type ImportResult struct {
	Imported []model.Entry
	Skipped  int
}

// ImportCalendar pulls OOO events from the source and adds each as an
// entry. Drafts that fail validation are skipped and logged rather than
// aborting the whole import.
func ImportCalendar(ctx context.Context, store EntryStore, source EventSource, logger *zap.Logger, from, to time.Time, createdBy string) (*ImportResult, error) {
	logger.Info("Importing calendar events",
		zap.String("from", from.Format(model.DateLayout)),
		zap.String("to", to.Format(model.DateLayout)))

	drafts, err := source.FetchOOOEvents(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar events: %w", err)
	}

	logger.Debug("Fetched calendar events", zap.Int("count", len(drafts)))

	result := &ImportResult{}
	for _, draft := range drafts {
		entry, err := AddEntry(store, logger, draft, createdBy)
		if err != nil {
			var vErr *model.ValidationError
			if errors.As(err, &vErr) {
				logger.Warn("Skipping invalid calendar event",
					zap.String("name", draft.Name),
					zap.String("start", draft.Start),
					zap.Error(err))
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Imported = append(result.Imported, entry)
	}

	logger.Info("Calendar import finished",
		zap.Int("imported", len(result.Imported)),
		zap.Int("skipped", result.Skipped))

	return result, nil
}
