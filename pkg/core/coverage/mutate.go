package coverage

import (
	"github.com/google/uuid"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// ItemField names a mutable coverage item field
type ItemField string

const (
	FieldTitle ItemField = "title"
	FieldLink  ItemField = "link"
	FieldNotes ItemField = "notes"
)

// The mutation functions below are path-addressed copy-on-write updates:
// they locate a coverage item (and optionally a task) by id inside an
// entry, replace only the branch that changed, and return the patched
// entry. The original entry and its untouched items share structure with
// the result. A missing coverage or task id returns the entry unchanged
// with changed=false; stale ids after a concurrent deletion are
// therefore silent no-ops.

// AddItem appends a new coverage item with the given title to the entry
func AddItem(entry model.Entry, title, link, notes string) (model.Entry, model.CoverageItem) {
	item := model.CoverageItem{
		ID:    uuid.New().String(),
		Title: title,
		Link:  link,
		Notes: notes,
	}
	entry.Coverage = append(copyItems(entry.Coverage), item)
	return entry, item
}

// RemoveItem deletes the coverage item with the given id from the entry
func RemoveItem(entry model.Entry, coverageID string) (model.Entry, bool) {
	idx := itemIndex(entry.Coverage, coverageID)
	if idx < 0 {
		return entry, false
	}
	items := copyItems(entry.Coverage)
	entry.Coverage = append(items[:idx], items[idx+1:]...)
	return entry, true
}

// UpdateItemField sets a single field on the coverage item with the given id
func UpdateItemField(entry model.Entry, coverageID string, field ItemField, value string) (model.Entry, bool) {
	return patchItem(entry, coverageID, func(item *model.CoverageItem) bool {
		switch field {
		case FieldTitle:
			item.Title = value
		case FieldLink:
			item.Link = value
		case FieldNotes:
			item.Notes = value
		default:
			return false
		}
		return true
	})
}

// AddTask appends a new unchecked task to the coverage item with the given id
func AddTask(entry model.Entry, coverageID, text string) (model.Entry, bool) {
	return patchItem(entry, coverageID, func(item *model.CoverageItem) bool {
		task := model.Task{
			ID:   uuid.New().String(),
			Text: text,
		}
		item.Tasks = append(copyTasks(item.Tasks), task)
		return true
	})
}

// ToggleTask flips the done flag of one task, leaving all others untouched
func ToggleTask(entry model.Entry, coverageID, taskID string) (model.Entry, bool) {
	return patchTask(entry, coverageID, taskID, func(task *model.Task) {
		task.Done = !task.Done
	})
}

// RemoveTask deletes one task from a coverage item
func RemoveTask(entry model.Entry, coverageID, taskID string) (model.Entry, bool) {
	return patchItem(entry, coverageID, func(item *model.CoverageItem) bool {
		for i, t := range item.Tasks {
			if t.ID == taskID {
				tasks := copyTasks(item.Tasks)
				item.Tasks = append(tasks[:i], tasks[i+1:]...)
				return true
			}
		}
		return false
	})
}

// patchItem applies fn to a copy of the addressed coverage item and
// splices the copy into a fresh coverage slice
func patchItem(entry model.Entry, coverageID string, fn func(*model.CoverageItem) bool) (model.Entry, bool) {
	idx := itemIndex(entry.Coverage, coverageID)
	if idx < 0 {
		return entry, false
	}

	item := entry.Coverage[idx]
	if !fn(&item) {
		return entry, false
	}

	items := copyItems(entry.Coverage)
	items[idx] = item
	entry.Coverage = items
	return entry, true
}

func patchTask(entry model.Entry, coverageID, taskID string, fn func(*model.Task)) (model.Entry, bool) {
	return patchItem(entry, coverageID, func(item *model.CoverageItem) bool {
		for i, t := range item.Tasks {
			if t.ID == taskID {
				tasks := copyTasks(item.Tasks)
				fn(&tasks[i])
				item.Tasks = tasks
				return true
			}
		}
		return false
	})
}

func itemIndex(items []model.CoverageItem, coverageID string) int {
	for i, item := range items {
		if item.ID == coverageID {
			return i
		}
	}
	return -1
}

func copyItems(items []model.CoverageItem) []model.CoverageItem {
	out := make([]model.CoverageItem, len(items))
	copy(out, items)
	return out
}

func copyTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}
