package roster

import (
	"fmt"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

// Registry is the static shift catalog. Templates are validated once at
// construction and never mutated afterwards.
type Registry struct {
	templates map[string]*domain.ShiftTemplate
	order     []string
}

var builtinTemplates = []domain.ShiftTemplate{
	{
		ID:           "toronto-0800-1600",
		Name:         "Toronto (8 AM - 4 PM)",
		Region:       domain.RegionToronto,
		DefaultStart: 8,
		DefaultEnd:   16,
		Adjustable:   domain.AdjustableRange{Min: 8, Max: 18},
		Breaks: []domain.BreakWindow{
			{Start: 9.5, End: 10, Duration: 0.25},
			{Start: 13.5, End: 14, Duration: 0.25},
		},
		Lunch: domain.LunchWindow{Start: 11.5, End: 13},
	},
	{
		ID:           "toronto-1000-1800",
		Name:         "Toronto (10 AM - 6 PM)",
		Region:       domain.RegionToronto,
		DefaultStart: 10,
		DefaultEnd:   18,
		Adjustable:   domain.AdjustableRange{Min: 8, Max: 18},
		Breaks: []domain.BreakWindow{
			{Start: 11, End: 11.5, Duration: 0.25},
			{Start: 15, End: 15.5, Duration: 0.25},
		},
		Lunch: domain.LunchWindow{Start: 12.5, End: 14},
	},
	{
		ID:           "bogota-0700-1630",
		Name:         "Bogotá (7 AM - 4:30 PM)",
		Region:       domain.RegionBogota,
		DefaultStart: 7,
		DefaultEnd:   16.5,
		Adjustable:   domain.AdjustableRange{Min: 7, Max: 18},
		Breaks: []domain.BreakWindow{
			{Start: 9, End: 9.5, Duration: 0.25},
		},
		Lunch: domain.LunchWindow{Start: 11.5, End: 13.5},
	},
	{
		ID:           "bogota-0830-1800",
		Name:         "Bogotá (8:30 AM - 6 PM)",
		Region:       domain.RegionBogota,
		DefaultStart: 8.5,
		DefaultEnd:   18,
		Adjustable:   domain.AdjustableRange{Min: 7, Max: 18},
		Breaks: []domain.BreakWindow{
			{Start: 10, End: 10.5, Duration: 0.25},
		},
		Lunch: domain.LunchWindow{Start: 12, End: 14},
	},
}

// Builtin returns the registry with the standard Toronto/Bogotá catalog.
func Builtin() (*Registry, error) {
	return NewRegistry(builtinTemplates)
}

func NewRegistry(templates []domain.ShiftTemplate) (*Registry, error) {
	r := &Registry{
		templates: make(map[string]*domain.ShiftTemplate, len(templates)),
		order:     make([]string, 0, len(templates)),
	}

	for i := range templates {
		tpl := templates[i]
		if tpl.LunchDuration == 0 {
			tpl.LunchDuration = tpl.Region.LunchDuration()
		}
		if err := validateTemplate(&tpl); err != nil {
			return nil, err
		}
		if _, exists := r.templates[tpl.ID]; exists {
			return nil, fmt.Errorf("duplicate shift id %q", tpl.ID)
		}
		r.templates[tpl.ID] = &tpl
		r.order = append(r.order, tpl.ID)
	}

	return r, nil
}

// Lookup resolves a shift id to its template.
func (r *Registry) Lookup(shiftID string) (*domain.ShiftTemplate, error) {
	tpl, exists := r.templates[shiftID]
	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownShift, shiftID)
	}
	return tpl, nil
}

// ShiftIDs returns all shift ids in declaration order. The order is stable
// and drives both headcount input and generation order.
func (r *Registry) ShiftIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Templates returns all templates in declaration order.
func (r *Registry) Templates() []*domain.ShiftTemplate {
	tpls := make([]*domain.ShiftTemplate, 0, len(r.order))
	for _, id := range r.order {
		tpls = append(tpls, r.templates[id])
	}
	return tpls
}

func validateTemplate(tpl *domain.ShiftTemplate) error {
	if tpl.ID == "" {
		return fmt.Errorf("template without id")
	}
	if tpl.DefaultStart >= tpl.DefaultEnd {
		return fmt.Errorf("shift %q: default start must be before default end", tpl.ID)
	}
	if tpl.Adjustable.Min > tpl.DefaultStart || tpl.Adjustable.Max < tpl.DefaultEnd {
		return fmt.Errorf("shift %q: adjustable range must enclose the default span", tpl.ID)
	}

	for i, bw := range tpl.Breaks {
		if bw.Duration <= 0 {
			return fmt.Errorf("shift %q: break window %d has no duration", tpl.ID, i)
		}
		if bw.End-bw.Start < bw.Duration {
			return fmt.Errorf("shift %q: break window %d is narrower than its duration", tpl.ID, i)
		}
		if bw.Start < tpl.DefaultStart || bw.End > tpl.DefaultEnd {
			return fmt.Errorf("shift %q: break window %d is outside the shift span", tpl.ID, i)
		}
	}

	if tpl.LunchDuration <= 0 {
		return fmt.Errorf("shift %q: lunch has no duration", tpl.ID)
	}
	if tpl.Lunch.End-tpl.Lunch.Start < tpl.LunchDuration {
		return fmt.Errorf("shift %q: lunch window is narrower than its duration", tpl.ID)
	}
	if tpl.Lunch.Start < tpl.DefaultStart || tpl.Lunch.End > tpl.DefaultEnd {
		return fmt.Errorf("shift %q: lunch window is outside the shift span", tpl.ID)
	}

	return nil
}
