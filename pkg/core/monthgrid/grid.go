// Package monthgrid builds the read-only month view of the shared
// calendar: one cell per day, padded so day 1 aligns under its weekday
// column, with the deduplicated set of owners away that day.
package monthgrid

import (
	"sort"
	"time"

	"github.com/awayboard/awayboard/pkg/core/model"
)

// Cell is a single day on the grid
type Cell struct {
	Day     int      // day of month, 1-based
	Owners  []string // distinct owner names away this day, sorted
	Holiday string   // holiday name, empty when none
}

// Month is the rendered grid for one calendar month. Cells holds leading
// nil padding (one per weekday column before day 1, Sunday = column 0)
// followed by one cell per day, at most 42 slots in total.
type Month struct {
	Year  int
	Month time.Month
	Cells []*Cell
}

// Build maps a (year, month) and the current entries to a day-indexed
// grid of owners present each day. Entry intervals are closed on both
// ends and clipped to the month's bounds; an interval entirely outside
// the month contributes nothing. The output never aliases entry state.
func Build(year int, month time.Month, entries []model.Entry) *Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := &Month{
		Year:  year,
		Month: month,
		Cells: make([]*Cell, 0, int(first.Weekday())+daysInMonth),
	}

	// Leading padding so day 1 sits under its weekday column
	for i := 0; i < int(first.Weekday()); i++ {
		grid.Cells = append(grid.Cells, nil)
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		seen := make(map[string]bool)
		var owners []string
		for i := range entries {
			entry := &entries[i]
			if !entry.Contains(date) || seen[entry.Name] {
				continue
			}
			seen[entry.Name] = true
			owners = append(owners, entry.Name)
		}
		sort.Strings(owners)

		grid.Cells = append(grid.Cells, &Cell{Day: day, Owners: owners})
	}

	return grid
}

// Cell returns the cell for a day of the month, or nil when out of range
func (m *Month) Cell(day int) *Cell {
	for _, cell := range m.Cells {
		if cell != nil && cell.Day == day {
			return cell
		}
	}
	return nil
}
