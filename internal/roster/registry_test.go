package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

// validTemplate returns a minimal well-formed template for mutation in
// validation tests.
func validTemplate() domain.ShiftTemplate {
	return domain.ShiftTemplate{
		ID:           "test-0800-1600",
		Name:         "Test (8 AM - 4 PM)",
		Region:       domain.RegionToronto,
		DefaultStart: 8,
		DefaultEnd:   16,
		Adjustable:   domain.AdjustableRange{Min: 8, Max: 18},
		Breaks: []domain.BreakWindow{
			{Start: 9.5, End: 10, Duration: 0.25},
		},
		Lunch: domain.LunchWindow{Start: 11.5, End: 13},
	}
}

func TestBuiltin(t *testing.T) {
	registry, err := Builtin()
	require.NoError(t, err)

	ids := registry.ShiftIDs()
	assert.Equal(t, []string{
		"toronto-0800-1600",
		"toronto-1000-1800",
		"bogota-0700-1630",
		"bogota-0830-1800",
	}, ids, "shift ids must keep declaration order")

	tpls := registry.Templates()
	require.Len(t, tpls, 4)
	for i, tpl := range tpls {
		assert.Equal(t, ids[i], tpl.ID)
		assert.Less(t, tpl.DefaultStart, tpl.DefaultEnd)
	}
}

func TestBuiltin_RegionLunchDurations(t *testing.T) {
	registry, err := Builtin()
	require.NoError(t, err)

	toronto, err := registry.Lookup("toronto-0800-1600")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, toronto.LunchDuration, 1e-9, "Toronto lunch is 30 minutes")

	bogota, err := registry.Lookup("bogota-0700-1630")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, bogota.LunchDuration, 1e-9, "Bogotá lunch is 60 minutes")
}

func TestLookup_UnknownShift(t *testing.T) {
	registry, err := Builtin()
	require.NoError(t, err)

	_, err = registry.Lookup("night-shift")
	assert.ErrorIs(t, err, domain.ErrUnknownShift)
}

func TestNewRegistry_RejectsInvalidTemplates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.ShiftTemplate)
	}{
		{"start after end", func(tpl *domain.ShiftTemplate) {
			tpl.DefaultStart = 17
		}},
		{"adjustable range narrower than span", func(tpl *domain.ShiftTemplate) {
			tpl.Adjustable.Min = 9
		}},
		{"break outside shift", func(tpl *domain.ShiftTemplate) {
			tpl.Breaks[0] = domain.BreakWindow{Start: 7, End: 7.5, Duration: 0.25}
		}},
		{"break window narrower than its duration", func(tpl *domain.ShiftTemplate) {
			tpl.Breaks[0].Duration = 1
		}},
		{"lunch outside shift", func(tpl *domain.ShiftTemplate) {
			tpl.Lunch = domain.LunchWindow{Start: 15.5, End: 17}
		}},
		{"lunch window narrower than its duration", func(tpl *domain.ShiftTemplate) {
			tpl.Lunch = domain.LunchWindow{Start: 12, End: 12.25}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := validTemplate()
			tc.mutate(&tpl)
			_, err := NewRegistry([]domain.ShiftTemplate{tpl})
			assert.Error(t, err)
		})
	}
}

func TestNewRegistry_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewRegistry([]domain.ShiftTemplate{validTemplate(), validTemplate()})
	assert.Error(t, err)
}
