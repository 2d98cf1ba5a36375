package domain

type Region string

const (
	RegionToronto Region = "Toronto"
	RegionBogota  Region = "Bogotá"
)

// LunchDuration is the fixed lunch length for shifts in this region,
// in fractional hours.
func (r Region) LunchDuration() float64 {
	if r == RegionBogota {
		return 1.0
	}
	return 0.5
}

// BreakWindow bounds one whole break activity: staggered start times are
// placed so that start + Duration never passes End.
type BreakWindow struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

type LunchWindow struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type AdjustableRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ShiftTemplate is immutable configuration data, defined at process start.
// All times are fractional hours (8.5 = 08:30).
type ShiftTemplate struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Region        Region          `json:"region"`
	DefaultStart  float64         `json:"defaultStart"`
	DefaultEnd    float64         `json:"defaultEnd"`
	Adjustable    AdjustableRange `json:"adjustableRange"`
	Breaks        []BreakWindow   `json:"breakWindows"`
	Lunch         LunchWindow     `json:"lunchWindow"`
	LunchDuration float64         `json:"lunchDuration"`
}
