package monthgrid

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Holiday is a recurring public holiday declared in configuration as an
// RRULE, e.g. "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
type Holiday struct {
	Name  string
	RRule string
}

// ApplyHolidays expands each holiday rule across the grid's month and
// stamps matching cells. Rules without an explicit DTSTART are anchored
// to a fixed epoch so yearly recurrences land in every displayed year;
// rules that carry their own DTSTART keep it, since interval rules like
// every-2-years depend on the anchor.
func (m *Month) ApplyHolidays(holidays []Holiday) error {
	if len(holidays) == 0 {
		return nil
	}

	monthStart := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	for _, h := range holidays {
		rule, err := rrule.StrToRRule(h.RRule)
		if err != nil {
			return fmt.Errorf("invalid rrule for holiday %q: %w", h.Name, err)
		}
		if !strings.Contains(strings.ToUpper(h.RRule), "DTSTART") {
			rule.DTStart(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
		}

		for _, occurrence := range rule.Between(monthStart, monthEnd, true) {
			if cell := m.Cell(occurrence.Day()); cell != nil {
				cell.Holiday = h.Name
			}
		}
	}

	return nil
}
