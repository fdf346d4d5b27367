package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/awayboard/awayboard/pkg/core/monthgrid"
	"github.com/awayboard/awayboard/pkg/core/services"
)

// CalendarCmd creates the calendar command rendering the month grid
func CalendarCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [year month]",
		Short: "Show who is away on a month calendar (defaults to the current month)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := now.Year(), now.Month()

			if len(args) == 2 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("year must be a number: %w", err)
				}
				m, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("month must be a number: %w", err)
				}
				if m < 1 || m > 12 {
					return fmt.Errorf("month must be between 1 and 12, got %d", m)
				}
				year, month = y, time.Month(m)
			}

			grid := monthgrid.Build(year, month, services.ListEntries(app.Store))

			holidays := make([]monthgrid.Holiday, len(app.Cfg.Holidays))
			for i, h := range app.Cfg.Holidays {
				holidays[i] = monthgrid.Holiday{Name: h.Name, RRule: h.RRule}
			}
			if err := grid.ApplyHolidays(holidays); err != nil {
				return fmt.Errorf("failed to apply holidays: %w", err)
			}

			renderMonth(grid)
			return nil
		},
	}
}

// renderMonth prints the grid as a classic calendar followed by the
// per-day absence details
func renderMonth(grid *monthgrid.Month) {
	fmt.Printf("\n%s %d\n\n", grid.Month, grid.Year)
	fmt.Println("  Su   Mo   Tu   We   Th   Fr   Sa")

	var row strings.Builder
	for i, cell := range grid.Cells {
		if cell == nil {
			row.WriteString("     ")
		} else {
			marker := " "
			if len(cell.Owners) > 0 {
				marker = "*"
			}
			row.WriteString(fmt.Sprintf(" %2d%s ", cell.Day, marker))
		}
		if (i+1)%7 == 0 {
			fmt.Println(row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		fmt.Println(row.String())
	}

	fmt.Println()
	for _, cell := range grid.Cells {
		if cell == nil || (len(cell.Owners) == 0 && cell.Holiday == "") {
			continue
		}
		line := fmt.Sprintf("  %2d:", cell.Day)
		if len(cell.Owners) > 0 {
			line += " " + strings.Join(cell.Owners, ", ")
		}
		if cell.Holiday != "" {
			line += fmt.Sprintf(" [%s]", cell.Holiday)
		}
		fmt.Println(line)
	}
	fmt.Println()
}
