package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/awayboard/awayboard/pkg/core/coverage"
	"github.com/awayboard/awayboard/pkg/core/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// EntryStore defines the store operations the services need
type EntryStore interface {
	Insert(entry model.Entry)
	Remove(id string) bool
	Update(id string, entry model.Entry) (model.Entry, bool)
	Get(id string) (model.Entry, bool)
	List() []model.Entry
}

// AddEntry validates a draft and inserts it as a new entry with a fresh
// id. Rejected drafts return a model.ValidationError and leave the
// collection unchanged.
func AddEntry(store EntryStore, logger *zap.Logger, draft model.EntryDraft, createdBy string) (model.Entry, error) {
	if err := validateDraft(&draft); err != nil {
		logger.Debug("Entry draft rejected", zap.Error(err))
		return model.Entry{}, err
	}

	entry := model.Entry{
		ID:        uuid.New().String(),
		Name:      draft.Name,
		Start:     draft.Start,
		End:       draft.End,
		Type:      draft.Type,
		Notes:     draft.Notes,
		Coverage:  coverage.Normalize(coverage.FromItems(draft.Coverage)),
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if entry.Type == "" {
		entry.Type = model.TypeOther
	}

	store.Insert(entry)

	logger.Info("Entry created",
		zap.String("id", entry.ID),
		zap.String("name", entry.Name),
		zap.String("start", entry.Start),
		zap.String("end", entry.End),
		zap.String("type", string(entry.Type)))

	return entry, nil
}

// RemoveEntry deletes an entry and all its coverage items and tasks.
// Removing an absent id is a no-op.
func RemoveEntry(store EntryStore, logger *zap.Logger, id string) bool {
	removed := store.Remove(id)
	if removed {
		logger.Info("Entry removed", zap.String("id", id))
	} else {
		logger.Debug("Entry not found, nothing removed", zap.String("id", id))
	}
	return removed
}

// EntryPatch carries the fields to change on an existing entry. Nil
// fields are left as they were.
type EntryPatch struct {
	Name  *string
	Start *string
	End   *string
	Type  *model.EntryType
	Notes *string
}

// UpdateEntry applies a patch to the entry with the given id and writes
// the result back, preserving the identifier and unpatched fields. An
// unknown id returns found=false and changes nothing; a patch that would
// break the date invariant returns a ValidationError.
func UpdateEntry(store EntryStore, logger *zap.Logger, id string, patch EntryPatch) (model.Entry, bool, error) {
	entry, ok := store.Get(id)
	if !ok {
		logger.Debug("Entry not found, nothing updated", zap.String("id", id))
		return model.Entry{}, false, nil
	}

	if patch.Name != nil {
		entry.Name = *patch.Name
	}
	if patch.Start != nil {
		entry.Start = *patch.Start
	}
	if patch.End != nil {
		entry.End = *patch.End
	}
	if patch.Type != nil {
		entry.Type = *patch.Type
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}

	if err := checkDates(entry.Start, entry.End); err != nil {
		return model.Entry{}, true, err
	}
	if !entry.Type.IsValid() {
		return model.Entry{}, true, model.NewValidationError("type", fmt.Sprintf("unknown entry type %q", entry.Type))
	}

	updated, _ := store.Update(id, entry)
	logger.Info("Entry updated", zap.String("id", id))
	return updated, true, nil
}

// ListEntries returns all entries sorted by start date ascending, the
// order calendar and board views display them in
func ListEntries(store EntryStore) []model.Entry {
	entries := store.List()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
	return entries
}

// validateDraft checks required fields, date format, date ordering and
// the entry type
func validateDraft(draft *model.EntryDraft) error {
	if err := validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return model.NewValidationError(first.Field(), fmt.Sprintf("failed %q check", first.Tag()))
		}
		return fmt.Errorf("draft validation failed: %w", err)
	}

	if err := checkDates(draft.Start, draft.End); err != nil {
		return err
	}

	if draft.Type != "" && !draft.Type.IsValid() {
		return model.NewValidationError("type", fmt.Sprintf("unknown entry type %q", draft.Type))
	}

	return nil
}

// checkDates enforces the start <= end invariant
func checkDates(start, end string) error {
	startDate, err := model.ParseDate(start)
	if err != nil {
		return model.NewValidationError("start", err.Error())
	}
	endDate, err := model.ParseDate(end)
	if err != nil {
		return model.NewValidationError("end", err.Error())
	}
	if startDate.After(endDate) {
		return model.NewValidationError("start", "start date must not be after end date")
	}
	return nil
}
