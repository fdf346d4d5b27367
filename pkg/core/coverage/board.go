package coverage

import (
	"sort"
	"time"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// BoardItem is one coverage item on the cross-team board, flattened
// together with the identity and leave window of its owning entry
type BoardItem struct {
	EntryID   string
	OwnerName string
	Start     string // Date format
	End       string // Date format
	Item      model.CoverageItem
}

// Policy controls which entries contribute coverage to the board
type Policy struct {
	// IncludeElapsed keeps coverage from entries whose leave has fully
	// ended before today. The default board drops them: coverage for
	// leave that already elapsed no longer needs attention. This is a
	// display filter only, entries are never deleted by it.
	IncludeElapsed bool
}

// Aggregate flattens coverage items across all entries into a single
// board list, ordered by entry start date ascending. Entries whose end
// date is strictly before today are excluded unless the policy includes
// elapsed leave.
func Aggregate(entries []model.Entry, policy Policy, today time.Time) []BoardItem {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var board []BoardItem
	for _, entry := range sorted {
		if !policy.IncludeElapsed && elapsed(&entry, today) {
			continue
		}
		for _, item := range entry.Coverage {
			board = append(board, BoardItem{
				EntryID:   entry.ID,
				OwnerName: entry.Name,
				Start:     entry.Start,
				End:       entry.End,
				Item:      item,
			})
		}
	}
	return board
}

// elapsed reports whether the entry's leave window ended strictly before
// today. Entries with unparseable end dates are kept on the board so bad
// data stays visible rather than silently disappearing.
func elapsed(entry *model.Entry, today time.Time) bool {
	end, err := entry.EndDate()
	if err != nil {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return end.Before(day)
}
