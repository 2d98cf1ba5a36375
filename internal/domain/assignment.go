package domain

type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// EmployeeAssignment is one schedule row. Rows are created in bulk by the
// generator and mutated field-by-field by edits; they reference their
// template by ID and never own it.
type EmployeeAssignment struct {
	EmployeeID string     `json:"employeeId"`
	ShiftID    string     `json:"shiftId"`
	StartTime  float64    `json:"startTime"`
	EndTime    float64    `json:"endTime"`
	Breaks     []Interval `json:"breaks"`
	Lunch      Interval   `json:"lunch"`
}

// ScheduleTable is the single source of truth for one session, ordered by
// generation order and replaced wholesale on regeneration.
type ScheduleTable []EmployeeAssignment
