package roster

import (
	"fmt"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

// staggerStarts spreads n start times evenly over the window, endpoints
// inclusive. Window bounds cover the whole activity, so the usable span for
// start times ends duration before the window does; when the duration fills
// the window every employee gets the window start. Each value is rounded to
// the nearest minute, which preserves the non-decreasing order.
func staggerStarts(windowStart, windowEnd, duration float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	last := windowEnd - duration
	if last < windowStart {
		last = windowStart
	}

	starts := make([]float64, n)
	if n == 1 {
		starts[0] = domain.RoundToMinute(windowStart)
		return starts
	}

	step := (last - windowStart) / float64(n-1)
	for i := range starts {
		starts[i] = domain.RoundToMinute(windowStart + float64(i)*step)
	}
	return starts
}

// Generate produces one assignment per employee for the given shift, with
// break and lunch start times staggered across their windows in employee
// order. It never touches a previously generated table.
func (r *Registry) Generate(shiftID string, employeeIDs []string) (domain.ScheduleTable, error) {
	tpl, err := r.Lookup(shiftID)
	if err != nil {
		return nil, err
	}

	n := len(employeeIDs)

	breakStarts := make([][]float64, len(tpl.Breaks))
	for i, bw := range tpl.Breaks {
		breakStarts[i] = staggerStarts(bw.Start, bw.End, bw.Duration, n)
	}
	lunchStarts := staggerStarts(tpl.Lunch.Start, tpl.Lunch.End, tpl.LunchDuration, n)

	table := make(domain.ScheduleTable, 0, n)
	for i, employeeID := range employeeIDs {
		row := domain.EmployeeAssignment{
			EmployeeID: employeeID,
			ShiftID:    tpl.ID,
			StartTime:  tpl.DefaultStart,
			EndTime:    tpl.DefaultEnd,
			Breaks:     make([]domain.Interval, 0, len(tpl.Breaks)),
		}

		for j, bw := range tpl.Breaks {
			row.Breaks = append(row.Breaks, domain.Interval{
				Start: breakStarts[j][i],
				End:   breakStarts[j][i] + bw.Duration,
			})
		}
		row.Lunch = domain.Interval{
			Start: lunchStarts[i],
			End:   lunchStarts[i] + tpl.LunchDuration,
		}

		table = append(table, row)
	}

	return table, nil
}

// GenerateByHeadcount synthesizes "Employee 1..N" labels for the headcount
// entry mode.
func (r *Registry) GenerateByHeadcount(shiftID string, headcount int) (domain.ScheduleTable, error) {
	if headcount < 0 {
		return nil, fmt.Errorf("%w: %d employees for shift %q", domain.ErrInvalidHeadcount, headcount, shiftID)
	}

	employeeIDs := make([]string, headcount)
	for i := range employeeIDs {
		employeeIDs[i] = fmt.Sprintf("Employee %d", i+1)
	}

	return r.Generate(shiftID, employeeIDs)
}
