package roster

import (
	"fmt"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

type EditField string

const (
	FieldStart      EditField = "start"
	FieldEnd        EditField = "end"
	FieldLunchStart EditField = "lunchStart"
)

// MinShiftSpan is the smallest allowed distance between a row's start and
// end times, in hours.
const MinShiftSpan = 1.0

// FieldBounds is the refreshed valid range for a field whose bounds depend
// on a just-edited field, so the consuming UI can reconfigure its control
// before the next interaction.
type FieldBounds struct {
	Field EditField `json:"field"`
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
}

// ApplyEdit applies one user edit to one row of the table, re-deriving the
// dependent field (lunch end) atomically. The row is mutated in place; other
// rows' staggered times are never recomputed. Values violating the template
// bounds are rejected with ErrOutOfRange, never clamped.
func (r *Registry) ApplyEdit(table domain.ScheduleTable, rowIndex int, field EditField, value float64) ([]FieldBounds, error) {
	if rowIndex < 0 || rowIndex >= len(table) {
		return nil, fmt.Errorf("%w: row index %d", domain.ErrOutOfRange, rowIndex)
	}
	row := &table[rowIndex]

	tpl, err := r.Lookup(row.ShiftID)
	if err != nil {
		return nil, err
	}

	switch field {
	case FieldStart:
		min, max := tpl.Adjustable.Min, row.EndTime-MinShiftSpan
		if value < min || value > max {
			return nil, fmt.Errorf("%w: start %s outside [%s, %s]",
				domain.ErrOutOfRange, domain.FormatClock(value), domain.FormatClock(min), domain.FormatClock(max))
		}
		row.StartTime = value
		return []FieldBounds{
			{Field: FieldEnd, Min: value + MinShiftSpan, Max: tpl.Adjustable.Max},
		}, nil

	case FieldEnd:
		min, max := row.StartTime+MinShiftSpan, tpl.Adjustable.Max
		if value < min || value > max {
			return nil, fmt.Errorf("%w: end %s outside [%s, %s]",
				domain.ErrOutOfRange, domain.FormatClock(value), domain.FormatClock(min), domain.FormatClock(max))
		}
		row.EndTime = value
		return []FieldBounds{
			{Field: FieldStart, Min: tpl.Adjustable.Min, Max: value - MinShiftSpan},
		}, nil

	case FieldLunchStart:
		min, max := tpl.Lunch.Start, tpl.Lunch.End-tpl.LunchDuration
		if value < min || value > max {
			return nil, fmt.Errorf("%w: lunch start %s outside [%s, %s]",
				domain.ErrOutOfRange, domain.FormatClock(value), domain.FormatClock(min), domain.FormatClock(max))
		}
		row.Lunch = domain.Interval{Start: value, End: value + tpl.LunchDuration}
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown edit field %q", field)
	}
}
