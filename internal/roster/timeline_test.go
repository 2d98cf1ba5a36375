package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

func TestProject_SegmentsPerRow(t *testing.T) {
	registry := testRegistry(t)

	toronto, err := registry.Generate("toronto-0800-1600", []string{"Alice", "Bob"})
	require.NoError(t, err)
	bogota, err := registry.Generate("bogota-0700-1630", []string{"Dana"})
	require.NoError(t, err)
	table := append(toronto, bogota...)

	segments, err := registry.Project(table)
	require.NoError(t, err)

	// toronto rows carry two breaks (4 segments each), bogota rows one (3)
	assert.Len(t, segments, 4+4+3)

	for _, seg := range segments {
		assert.Less(t, seg.Start, seg.End)
	}
}

func TestProject_SubjectEncodesShift(t *testing.T) {
	registry := testRegistry(t)

	// the same display name on two shifts must not collapse into one subject
	a, err := registry.Generate("toronto-0800-1600", []string{"Employee 1"})
	require.NoError(t, err)
	b, err := registry.Generate("toronto-1000-1800", []string{"Employee 1"})
	require.NoError(t, err)

	segments, err := registry.Project(append(a, b...))
	require.NoError(t, err)

	subjects := make(map[string]bool)
	for _, seg := range segments {
		subjects[seg.Subject] = true
	}
	assert.Len(t, subjects, 2)
	assert.True(t, subjects["Employee 1 (Toronto (8 AM - 4 PM))"])
	assert.True(t, subjects["Employee 1 (Toronto (10 AM - 6 PM))"])
}

func TestProject_CategoriesAndOrder(t *testing.T) {
	registry := testRegistry(t)

	table, err := registry.Generate("bogota-0830-1800", []string{"Dana"})
	require.NoError(t, err)

	segments, err := registry.Project(table)
	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.Equal(t, domain.SegmentWork, segments[0].Category)
	assert.Equal(t, domain.SegmentBreak, segments[1].Category)
	assert.Equal(t, domain.SegmentLunch, segments[2].Category)

	assert.InDelta(t, 8.5, segments[0].Start, 1e-9)
	assert.InDelta(t, 18.0, segments[0].End, 1e-9)
}

func TestProject_EmptyTable(t *testing.T) {
	registry := testRegistry(t)

	segments, err := registry.Project(domain.ScheduleTable{})
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestProject_MalformedInterval(t *testing.T) {
	registry := testRegistry(t)

	table, err := registry.Generate("toronto-0800-1600", []string{"Alice"})
	require.NoError(t, err)

	table[0].Lunch = domain.Interval{Start: 12, End: 12}

	_, err = registry.Project(table)
	assert.ErrorIs(t, err, domain.ErrMalformedInterval)
}
