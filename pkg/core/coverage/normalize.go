// Package coverage implements the coverage checklist model: normalization
// of raw coverage data into its canonical shape, the cross-team coverage
// board, and copy-on-write mutations of items and tasks.
package coverage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// RawItem is one coverage element as found in persisted data. Legacy
// collections stored coverage as plain strings; current ones store
// structured items. Both decode into RawItem and are resolved once at
// the normalization boundary, so downstream code only ever sees
// model.CoverageItem.
type RawItem struct {
	// Text is set when the element was a bare JSON string
	Text string
	// Item is set when the element was a structured object
	Item *rawStructured
}

type rawStructured struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Link  string    `json:"link"`
	Notes string    `json:"notes"`
	Tasks []rawTask `json:"tasks"`
}

type rawTask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// UnmarshalJSON accepts either a JSON string (legacy shape) or an object
func (r *RawItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Text = s
		r.Item = nil
		return nil
	}

	var item rawStructured
	if err := json.Unmarshal(data, &item); err != nil {
		return fmt.Errorf("coverage element is neither string nor object: %w", err)
	}
	r.Item = &item
	return nil
}

// MarshalJSON always emits the canonical structured shape
func (r RawItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(NormalizeItem(r))
}

// Normalize converts a raw coverage sequence into canonical coverage
// items. It never mutates its input and is idempotent: ids already
// present are preserved, missing ids and fields are filled with
// defaults.
func Normalize(raw []RawItem) []model.CoverageItem {
	if len(raw) == 0 {
		return nil
	}

	items := make([]model.CoverageItem, len(raw))
	for i, r := range raw {
		items[i] = NormalizeItem(r)
	}
	return items
}

// NormalizeItem converts a single raw element into a canonical coverage item
func NormalizeItem(r RawItem) model.CoverageItem {
	if r.Item == nil {
		return model.CoverageItem{
			ID:    uuid.New().String(),
			Title: r.Text,
		}
	}

	item := model.CoverageItem{
		ID:    r.Item.ID,
		Title: r.Item.Title,
		Link:  r.Item.Link,
		Notes: r.Item.Notes,
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	if len(r.Item.Tasks) > 0 {
		item.Tasks = make([]model.Task, len(r.Item.Tasks))
		for i, t := range r.Item.Tasks {
			item.Tasks[i] = normalizeTask(t)
		}
	}

	return item
}

func normalizeTask(t rawTask) model.Task {
	task := model.Task{
		ID:   t.ID,
		Text: t.Text,
		Done: t.Done,
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	return task
}

// FromItems wraps already-canonical coverage items as raw elements,
// useful for round-tripping through the persisted representation
func FromItems(items []model.CoverageItem) []RawItem {
	if len(items) == 0 {
		return nil
	}

	raw := make([]RawItem, len(items))
	for i, item := range items {
		tasks := make([]rawTask, len(item.Tasks))
		for j, t := range item.Tasks {
			tasks[j] = rawTask(t)
		}
		raw[i] = RawItem{Item: &rawStructured{
			ID:    item.ID,
			Title: item.Title,
			Link:  item.Link,
			Notes: item.Notes,
			Tasks: tasks,
		}}
	}
	return raw
}
