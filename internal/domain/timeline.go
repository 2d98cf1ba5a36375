package domain

type SegmentCategory string

const (
	SegmentWork  SegmentCategory = "Work"
	SegmentBreak SegmentCategory = "Break"
	SegmentLunch SegmentCategory = "Lunch"
)

// TimelineSegment is one renderable interval for one employee. Segments are
// a pure projection of the schedule table and are rebuilt on every render.
type TimelineSegment struct {
	Subject  string          `json:"subject"`
	Start    float64         `json:"start"`
	End      float64         `json:"end"`
	Category SegmentCategory `json:"category"`
}
