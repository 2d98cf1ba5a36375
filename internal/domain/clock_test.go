package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "00:00"},
		{8, "08:00"},
		{8.5, "08:30"},
		{9.75, "09:45"},
		{16.5, "16:30"},
		{578.0 / 60, "09:38"},
		{23 + 59.0/60, "23:59"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatClock(tc.hours))
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"00:00", 0},
		{"08:00", 8},
		{"08:30", 8.5},
		{"13:45", 13.75},
		{"23:59", 23 + 59.0/60},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-9)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "8", "08:60", "24:00", "-1:30", "08:30:00", "noon", "8h30"} {
		_, err := ParseClock(in)
		assert.Error(t, err, "expected %q to be rejected", in)
	}
}

func TestParseClock_RoundTripsFormat(t *testing.T) {
	for _, s := range []string{"07:00", "09:38", "12:15", "18:00"} {
		hours, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(hours))
	}
}

func TestRoundToMinute(t *testing.T) {
	assert.InDelta(t, 9.0+38.0/60, RoundToMinute(9.625), 1e-9, "half minutes round away from zero")
	assert.InDelta(t, 11.5, RoundToMinute(11.5), 1e-9)
	assert.InDelta(t, 8.0, RoundToMinute(8.0000001), 1e-9)
}
