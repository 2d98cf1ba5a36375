package handler

import (
	"math"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
	"github.com/deskops-tools/shift-planner/backend/internal/roster"
)

// View types carry boundary-formatted HH:MM strings; fractional hours never
// leave the process.

type rangeView struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type windowView struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

type templateView struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Region          string       `json:"region"`
	DefaultStart    string       `json:"defaultStart"`
	DefaultEnd      string       `json:"defaultEnd"`
	AdjustableRange rangeView    `json:"adjustableRange"`
	BreakWindows    []windowView `json:"breakWindows"`
	LunchWindow     windowView   `json:"lunchWindow"`
}

type intervalView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type rowBoundsView struct {
	Start      rangeView `json:"start"`
	End        rangeView `json:"end"`
	LunchStart rangeView `json:"lunchStart"`
}

type rowView struct {
	Index     int            `json:"index"`
	ShiftID   string         `json:"shiftId"`
	Shift     string         `json:"shift"`
	Employee  string         `json:"employee"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Breaks    []intervalView `json:"breaks"`
	Lunch     intervalView   `json:"lunch"`
	Bounds    rowBoundsView  `json:"bounds"`
}

type fieldBoundsView struct {
	Field string `json:"field"`
	Min   string `json:"min"`
	Max   string `json:"max"`
}

type segmentView struct {
	Subject  string `json:"subject"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Category string `json:"category"`
}

func newTemplateView(tpl *domain.ShiftTemplate) templateView {
	breaks := make([]windowView, 0, len(tpl.Breaks))
	for _, bw := range tpl.Breaks {
		breaks = append(breaks, windowView{
			Start:           domain.FormatClock(bw.Start),
			End:             domain.FormatClock(bw.End),
			DurationMinutes: minutes(bw.Duration),
		})
	}

	return templateView{
		ID:           tpl.ID,
		Name:         tpl.Name,
		Region:       string(tpl.Region),
		DefaultStart: domain.FormatClock(tpl.DefaultStart),
		DefaultEnd:   domain.FormatClock(tpl.DefaultEnd),
		AdjustableRange: rangeView{
			Min: domain.FormatClock(tpl.Adjustable.Min),
			Max: domain.FormatClock(tpl.Adjustable.Max),
		},
		BreakWindows: breaks,
		LunchWindow: windowView{
			Start:           domain.FormatClock(tpl.Lunch.Start),
			End:             domain.FormatClock(tpl.Lunch.End),
			DurationMinutes: minutes(tpl.LunchDuration),
		},
	}
}

func (h *Handler) newRowView(index int, row domain.EmployeeAssignment) (rowView, error) {
	tpl, err := h.registry.Lookup(row.ShiftID)
	if err != nil {
		return rowView{}, err
	}

	breaks := make([]intervalView, 0, len(row.Breaks))
	for _, br := range row.Breaks {
		breaks = append(breaks, newIntervalView(br))
	}

	return rowView{
		Index:     index,
		ShiftID:   row.ShiftID,
		Shift:     tpl.Name,
		Employee:  row.EmployeeID,
		StartTime: domain.FormatClock(row.StartTime),
		EndTime:   domain.FormatClock(row.EndTime),
		Breaks:    breaks,
		Lunch:     newIntervalView(row.Lunch),
		Bounds: rowBoundsView{
			Start: rangeView{
				Min: domain.FormatClock(tpl.Adjustable.Min),
				Max: domain.FormatClock(row.EndTime - roster.MinShiftSpan),
			},
			End: rangeView{
				Min: domain.FormatClock(row.StartTime + roster.MinShiftSpan),
				Max: domain.FormatClock(tpl.Adjustable.Max),
			},
			LunchStart: rangeView{
				Min: domain.FormatClock(tpl.Lunch.Start),
				Max: domain.FormatClock(tpl.Lunch.End - tpl.LunchDuration),
			},
		},
	}, nil
}

func (h *Handler) newTableView(table domain.ScheduleTable) ([]rowView, error) {
	rows := make([]rowView, 0, len(table))
	for i, row := range table {
		view, err := h.newRowView(i, row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, view)
	}
	return rows, nil
}

func newIntervalView(iv domain.Interval) intervalView {
	return intervalView{
		Start: domain.FormatClock(iv.Start),
		End:   domain.FormatClock(iv.End),
	}
}

func minutes(hours float64) int {
	return int(math.Round(hours * 60))
}
