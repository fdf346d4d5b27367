package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/awayboard/awayboard/pkg/core/coverage"
	"github.com/awayboard/awayboard/pkg/core/model"
)

// Board flattens coverage items across all entries into the cross-team
// coverage board
func Board(store EntryStore, policy coverage.Policy, today time.Time) []coverage.BoardItem {
	return coverage.Aggregate(store.List(), policy, today)
}

// AddCoverageItem appends a coverage item to an entry. Returns ok=false
// without changing anything when the entry id is unknown.
func AddCoverageItem(store EntryStore, logger *zap.Logger, entryID, title, link, notes string) (model.CoverageItem, bool) {
	entry, ok := store.Get(entryID)
	if !ok {
		logger.Debug("Entry not found, coverage item not added", zap.String("entry_id", entryID))
		return model.CoverageItem{}, false
	}

	patched, item := coverage.AddItem(entry, title, link, notes)
	store.Update(entryID, patched)

	logger.Info("Coverage item added",
		zap.String("entry_id", entryID),
		zap.String("coverage_id", item.ID),
		zap.String("title", item.Title))
	return item, true
}

// UpdateCoverageItemField sets one field of a coverage item and writes
// the patched entry back. Unknown ids are silent no-ops.
func UpdateCoverageItemField(store EntryStore, logger *zap.Logger, entryID, coverageID string, field coverage.ItemField, value string) bool {
	return applyCoverageMutation(store, logger, entryID, "update coverage item", func(entry model.Entry) (model.Entry, bool) {
		return coverage.UpdateItemField(entry, coverageID, field, value)
	})
}

// RemoveCoverageItem deletes a coverage item and its tasks from an entry
func RemoveCoverageItem(store EntryStore, logger *zap.Logger, entryID, coverageID string) bool {
	return applyCoverageMutation(store, logger, entryID, "remove coverage item", func(entry model.Entry) (model.Entry, bool) {
		return coverage.RemoveItem(entry, coverageID)
	})
}

// AddBoardTask appends an unchecked task to a coverage item
func AddBoardTask(store EntryStore, logger *zap.Logger, entryID, coverageID, text string) bool {
	return applyCoverageMutation(store, logger, entryID, "add task", func(entry model.Entry) (model.Entry, bool) {
		return coverage.AddTask(entry, coverageID, text)
	})
}

// ToggleBoardTask flips the done flag of one task
func ToggleBoardTask(store EntryStore, logger *zap.Logger, entryID, coverageID, taskID string) bool {
	return applyCoverageMutation(store, logger, entryID, "toggle task", func(entry model.Entry) (model.Entry, bool) {
		return coverage.ToggleTask(entry, coverageID, taskID)
	})
}

// RemoveBoardTask deletes one task from a coverage item
func RemoveBoardTask(store EntryStore, logger *zap.Logger, entryID, coverageID, taskID string) bool {
	return applyCoverageMutation(store, logger, entryID, "remove task", func(entry model.Entry) (model.Entry, bool) {
		return coverage.RemoveTask(entry, coverageID, taskID)
	})
}

// applyCoverageMutation looks up the owning entry, applies a
// copy-on-write patch and writes the result back through the store.
// Missing entry, coverage or task ids leave the collection untouched:
// they mean another editor already deleted the target.
func applyCoverageMutation(store EntryStore, logger *zap.Logger, entryID, action string, fn func(model.Entry) (model.Entry, bool)) bool {
	entry, ok := store.Get(entryID)
	if !ok {
		logger.Debug("Entry not found", zap.String("entry_id", entryID), zap.String("action", action))
		return false
	}

	patched, changed := fn(entry)
	if !changed {
		logger.Debug("Target not found in entry", zap.String("entry_id", entryID), zap.String("action", action))
		return false
	}

	store.Update(entryID, patched)
	logger.Info("Coverage updated", zap.String("entry_id", entryID), zap.String("action", action))
	return true
}
