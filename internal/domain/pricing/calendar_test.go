//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(t *testing.T, checkIn, checkOut time.Time) pricing.StayRange {
	t.Helper()
	s, err := pricing.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func TestCalendar_IsAvailable(t *testing.T) {
	checkIn := day(2026, 3, 2)

	t.Run("empty calendar: every date available", func(t *testing.T) {
		cal := pricing.NewCalendar(nil)
		assert.True(t, cal.IsAvailable(checkIn))
		assert.True(t, cal.IsAvailable(checkIn.AddDate(1, 0, 0)))
		assert.Equal(t, pricing.DefaultAvailable, cal.Policy())
	})

	t.Run("date without entry stays available", func(t *testing.T) {
		cal := builder.NewCalendarBuilder().
			BlockedOn(day(2026, 3, 10)).
			Build()
		assert.True(t, cal.IsAvailable(checkIn))
		assert.False(t, cal.IsAvailable(day(2026, 3, 10)))
	})

	t.Run("explicit available entry", func(t *testing.T) {
		cal := builder.NewCalendarBuilder().AvailableOn(checkIn).Build()
		assert.True(t, cal.IsAvailable(checkIn))
	})
}

func TestCalendar_IsRangeAvailable(t *testing.T) {
	checkIn := day(2026, 3, 2)
	checkOut := day(2026, 3, 5)

	testCases := []struct {
		name      string
		blocked   []time.Time
		available bool
	}{
		{name: "no blocks", available: true},
		{name: "first night blocked", blocked: []time.Time{day(2026, 3, 2)}, available: false},
		{name: "middle night blocked", blocked: []time.Time{day(2026, 3, 3)}, available: false},
		{name: "last night blocked", blocked: []time.Time{day(2026, 3, 4)}, available: false},
		{name: "checkout day blocked does not matter", blocked: []time.Time{day(2026, 3, 5)}, available: true},
		{name: "block outside range", blocked: []time.Time{day(2026, 3, 20)}, available: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCalendarBuilder()
			for _, d := range tc.blocked {
				b.BlockedOn(d)
			}
			got := b.Build().IsRangeAvailable(stay(t, checkIn, checkOut))
			assert.Equal(t, tc.available, got)
		})
	}
}

func TestCalendar_PriceForDate(t *testing.T) {
	target := day(2026, 7, 10)

	t.Run("no entry returns base price", func(t *testing.T) {
		cal := pricing.NewCalendar(nil)
		assert.InDelta(t, 120.0, cal.PriceForDate(target, 120), 1e-9)
	})

	t.Run("override wins over base price", func(t *testing.T) {
		cal := builder.NewCalendarBuilder().PriceOn(target, 95).Build()
		assert.InDelta(t, 95.0, cal.PriceForDate(target, 120), 1e-9)
	})

	t.Run("entry without override returns base price", func(t *testing.T) {
		cal := builder.NewCalendarBuilder().AvailableOn(target).Build()
		assert.InDelta(t, 120.0, cal.PriceForDate(target, 120), 1e-9)
	})
}

func TestCalendar_RangePrice(t *testing.T) {
	s := stay(t, day(2026, 7, 10), day(2026, 7, 13))

	t.Run("sums base price per night", func(t *testing.T) {
		cal := pricing.NewCalendar(nil)
		assert.InDelta(t, 360.0, cal.RangePrice(s, 120), 1e-9)
	})

	t.Run("mixes overrides and base price", func(t *testing.T) {
		cal := builder.NewCalendarBuilder().
			PriceOn(day(2026, 7, 11), 80).
			Build()
		assert.InDelta(t, 320.0, cal.RangePrice(s, 120), 1e-9)
	})

	t.Run("checkout day override is ignored", func(t *testing.T) {
		cal := builder.NewCalendarBuilder().
			PriceOn(day(2026, 7, 13), 999).
			Build()
		assert.InDelta(t, 360.0, cal.RangePrice(s, 120), 1e-9)
	})
}

func TestCalendar_StayBounds(t *testing.T) {
	s := stay(t, day(2026, 7, 10), day(2026, 7, 13))

	t.Run("no overrides", func(t *testing.T) {
		minStay, maxStay := pricing.NewCalendar(nil).StayBounds(s)
		assert.Nil(t, minStay)
		assert.Nil(t, maxStay)
	})

	t.Run("tightest bounds win", func(t *testing.T) {
		cal := builder.NewCalendarBuilder().
			MinStayOn(day(2026, 7, 10), 2).
			MinStayOn(day(2026, 7, 11), 4).
			MaxStayOn(day(2026, 7, 12), 7).
			Build()
		minStay, maxStay := cal.StayBounds(s)
		require.NotNil(t, minStay)
		require.NotNil(t, maxStay)
		assert.Equal(t, 4, *minStay)
		assert.Equal(t, 7, *maxStay)
	})
}

func TestNewStayRange(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		errIs    error
		nights   int
	}{
		{name: "one night", checkIn: day(2026, 3, 2), checkOut: day(2026, 3, 3), nights: 1},
		{name: "week", checkIn: day(2026, 3, 2), checkOut: day(2026, 3, 9), nights: 7},
		{name: "zero length", checkIn: day(2026, 3, 2), checkOut: day(2026, 3, 2), errIs: pricing.ErrInvalidStayRange},
		{name: "inverted", checkIn: day(2026, 3, 5), checkOut: day(2026, 3, 2), errIs: pricing.ErrInvalidStayRange},
		{name: "time component is dropped", checkIn: time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC), checkOut: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC), nights: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := pricing.NewStayRange(tc.checkIn, tc.checkOut)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.nights, s.Nights())
		})
	}
}
