package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDay(t *testing.T) {
	loc := time.FixedZone("TST", 3*3600)
	in := time.Date(2026, 8, 31, 17, 42, 13, 999, loc)

	got := NormalizeDay(in)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestWeekOf_StartsOnMonday(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday itself", time.Date(2026, 8, 31, 10, 0, 0, 0, loc), time.Date(2026, 8, 31, 0, 0, 0, 0, loc)},
		{"midweek", time.Date(2026, 9, 2, 23, 59, 0, 0, loc), time.Date(2026, 8, 31, 0, 0, 0, 0, loc)},
		{"sunday maps to previous monday", time.Date(2026, 9, 6, 1, 0, 0, 0, loc), time.Date(2026, 8, 31, 0, 0, 0, 0, loc)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := WeekOf(tc.in)
			assert.Equal(t, tc.want, start)
			assert.Equal(t, tc.want.AddDate(0, 0, 7), end)
			assert.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestWeekOf_IntervalContainsInput(t *testing.T) {
	in := time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)
	start, end := WeekOf(in)
	require.True(t, !in.Before(start))
	require.True(t, in.Before(end))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 8, 31, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
