package roster

import (
	"fmt"
	"strings"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

// ExportHeader is the column contract for the spreadsheet export.
var ExportHeader = []string{"Shift", "Employee", "Start Time", "End Time", "Breaks", "Lunch"}

// ExportRows serializes the table for export, one row per assignment, with
// all times boundary-formatted as HH:MM and break intervals joined into a
// single cell.
func (r *Registry) ExportRows(table domain.ScheduleTable) ([][]string, error) {
	rows := make([][]string, 0, len(table))

	for _, row := range table {
		tpl, err := r.Lookup(row.ShiftID)
		if err != nil {
			return nil, err
		}

		breaks := make([]string, 0, len(row.Breaks))
		for _, br := range row.Breaks {
			breaks = append(breaks, formatInterval(br))
		}

		rows = append(rows, []string{
			tpl.Name,
			row.EmployeeID,
			domain.FormatClock(row.StartTime),
			domain.FormatClock(row.EndTime),
			strings.Join(breaks, ", "),
			formatInterval(row.Lunch),
		})
	}

	return rows, nil
}

func formatInterval(iv domain.Interval) string {
	return fmt.Sprintf("%s - %s", domain.FormatClock(iv.Start), domain.FormatClock(iv.End))
}
