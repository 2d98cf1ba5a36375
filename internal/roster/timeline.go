package roster

import (
	"fmt"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

// Project flattens the schedule table into renderable segments: one work
// segment per row, one per break interval and one for lunch. The subject
// label carries both employee and shift so same-named employees on
// different shifts stay on separate timeline rows. A segment with
// start >= end means an upstream invariant was broken and is reported as
// ErrMalformedInterval rather than silently dropped.
func (r *Registry) Project(table domain.ScheduleTable) ([]domain.TimelineSegment, error) {
	segments := make([]domain.TimelineSegment, 0, len(table)*3)

	for _, row := range table {
		tpl, err := r.Lookup(row.ShiftID)
		if err != nil {
			return nil, err
		}

		subject := fmt.Sprintf("%s (%s)", row.EmployeeID, tpl.Name)

		work := domain.TimelineSegment{
			Subject:  subject,
			Start:    row.StartTime,
			End:      row.EndTime,
			Category: domain.SegmentWork,
		}
		if err := checkSegment(work); err != nil {
			return nil, err
		}
		segments = append(segments, work)

		for _, br := range row.Breaks {
			seg := domain.TimelineSegment{
				Subject:  subject,
				Start:    br.Start,
				End:      br.End,
				Category: domain.SegmentBreak,
			}
			if err := checkSegment(seg); err != nil {
				return nil, err
			}
			segments = append(segments, seg)
		}

		lunch := domain.TimelineSegment{
			Subject:  subject,
			Start:    row.Lunch.Start,
			End:      row.Lunch.End,
			Category: domain.SegmentLunch,
		}
		if err := checkSegment(lunch); err != nil {
			return nil, err
		}
		segments = append(segments, lunch)
	}

	return segments, nil
}

func checkSegment(seg domain.TimelineSegment) error {
	if seg.Start >= seg.End {
		return fmt.Errorf("%w: %s segment for %q spans %s - %s",
			domain.ErrMalformedInterval, seg.Category, seg.Subject,
			domain.FormatClock(seg.Start), domain.FormatClock(seg.End))
	}
	return nil
}
