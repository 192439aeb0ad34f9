//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteStay_RuleDiscount(t *testing.T) {
	// Base 200/night, one active -15% rule, 3 nights, no overrides, no fees:
	// subtotal = 3 * (200 * 0.85) = 510.
	in := pricing.QuoteInput{
		Stay:        stay(t, day(2026, 9, 1), day(2026, 9, 4)),
		UnitKind:    pricing.UnitAccommodation,
		NightlyBase: 200,
		Rules: []pricing.Rule{
			builder.NewRuleBuilder().WithValue(-15).Build(),
		},
	}

	b, err := pricing.QuoteStay(in)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Nights)
	assert.InDelta(t, 600.0, b.BasePrice, 1e-9)
	assert.InDelta(t, 510.0, b.Subtotal, 1e-9)
	assert.InDelta(t, 90.0, b.DiscountAmount, 1e-9)
	assert.InDelta(t, 15.0, b.DiscountPercentage, 1e-9)
	assert.True(t, b.HasDiscount)
	assert.Zero(t, b.ServiceFee)
	assert.Zero(t, b.Taxes)
	assert.InDelta(t, 510.0, b.Total, 1e-9)
}

func TestQuoteStay_UnavailableDates(t *testing.T) {
	// Night 2 of a 3-night span blocked: no total may be produced.
	in := pricing.QuoteInput{
		Stay:        stay(t, day(2026, 9, 1), day(2026, 9, 4)),
		UnitKind:    pricing.UnitAccommodation,
		NightlyBase: 200,
		Calendar:    builder.NewCalendarBuilder().BlockedOn(day(2026, 9, 2)).Build(),
	}

	_, err := pricing.QuoteStay(in)
	assert.ErrorIs(t, err, pricing.ErrUnavailableDates)
}

func TestQuoteStay_Preconditions(t *testing.T) {
	s := stay(t, day(2026, 9, 1), day(2026, 9, 4))

	t.Run("negative base price", func(t *testing.T) {
		_, err := pricing.QuoteStay(pricing.QuoteInput{Stay: s, NightlyBase: -1})
		assert.ErrorIs(t, err, pricing.ErrNegativeBasePrice)
	})

	t.Run("negative room rate", func(t *testing.T) {
		_, err := pricing.QuoteStay(pricing.QuoteInput{
			Stay:          s,
			NightlyBase:   100,
			SelectedRooms: []pricing.RoomRate{{RoomID: uuid.New(), NightlyRate: -5}},
		})
		assert.ErrorIs(t, err, pricing.ErrNegativeBasePrice)
	})
}

func TestQuoteStay_StayBounds(t *testing.T) {
	s := stay(t, day(2026, 9, 1), day(2026, 9, 4))

	t.Run("minimum stay violated", func(t *testing.T) {
		in := pricing.QuoteInput{
			Stay:        s,
			NightlyBase: 100,
			Calendar:    builder.NewCalendarBuilder().MinStayOn(day(2026, 9, 2), 5).Build(),
		}
		_, err := pricing.QuoteStay(in)
		assert.ErrorIs(t, err, pricing.ErrStayBelowMinimum)
	})

	t.Run("maximum stay violated", func(t *testing.T) {
		in := pricing.QuoteInput{
			Stay:        s,
			NightlyBase: 100,
			Calendar:    builder.NewCalendarBuilder().MaxStayOn(day(2026, 9, 1), 2).Build(),
		}
		_, err := pricing.QuoteStay(in)
		assert.ErrorIs(t, err, pricing.ErrStayAboveMaximum)
	})

	t.Run("bounds satisfied", func(t *testing.T) {
		in := pricing.QuoteInput{
			Stay:        s,
			NightlyBase: 100,
			Calendar: builder.NewCalendarBuilder().
				MinStayOn(day(2026, 9, 1), 2).
				MaxStayOn(day(2026, 9, 2), 7).
				Build(),
		}
		_, err := pricing.QuoteStay(in)
		assert.NoError(t, err)
	})
}

func TestQuoteStay_BestDealWins(t *testing.T) {
	s := stay(t, day(2026, 9, 1), day(2026, 9, 4))

	t.Run("calendar override beats weaker rule discount", func(t *testing.T) {
		in := pricing.QuoteInput{
			Stay:        s,
			UnitKind:    pricing.UnitAccommodation,
			NightlyBase: 100,
			// Overrides bring the calendar total to 100 + 50 + 50 = 200.
			Calendar: builder.NewCalendarBuilder().
				PriceOn(day(2026, 9, 2), 50).
				PriceOn(day(2026, 9, 3), 50).
				Build(),
			// Rule total is 3 * 90 = 270.
			Rules: []pricing.Rule{builder.NewRuleBuilder().WithValue(10).Build()},
		}
		b, err := pricing.QuoteStay(in)
		require.NoError(t, err)
		assert.InDelta(t, 200.0, b.Subtotal, 1e-9)
		assert.True(t, b.HasDiscount)
		// The chosen price came from overrides, not rules.
		assert.Zero(t, b.DiscountPercentage)
	})

	t.Run("rule discount beats calendar total", func(t *testing.T) {
		in := pricing.QuoteInput{
			Stay:        s,
			UnitKind:    pricing.UnitAccommodation,
			NightlyBase: 100,
			Calendar:    builder.NewCalendarBuilder().PriceOn(day(2026, 9, 2), 95).Build(),
			Rules:       []pricing.Rule{builder.NewRuleBuilder().WithValue(30).Build()},
		}
		b, err := pricing.QuoteStay(in)
		require.NoError(t, err)
		// Rule total 3 * 70 = 210 < calendar total 295.
		assert.InDelta(t, 210.0, b.Subtotal, 1e-9)
		assert.InDelta(t, 30.0, b.DiscountPercentage, 1e-9)
	})

	t.Run("discounts never stack", func(t *testing.T) {
		in := pricing.QuoteInput{
			Stay:        s,
			UnitKind:    pricing.UnitAccommodation,
			NightlyBase: 100,
			Calendar:    builder.NewCalendarBuilder().PriceOn(day(2026, 9, 1), 60).Build(),
			Rules:       []pricing.Rule{builder.NewRuleBuilder().WithValue(10).Build()},
		}
		b, err := pricing.QuoteStay(in)
		require.NoError(t, err)
		// Calendar total 260, rule total 270: the override wins, the rule
		// discount is not applied on top of it.
		assert.InDelta(t, 260.0, b.Subtotal, 1e-9)
	})
}

func TestQuoteStay_RoomSelection(t *testing.T) {
	s := stay(t, day(2026, 9, 1), day(2026, 9, 4))
	in := pricing.QuoteInput{
		Stay:        s,
		UnitKind:    pricing.UnitAccommodation,
		NightlyBase: 500,
		// Would change the price if room selection did not bypass pricing.
		Calendar: builder.NewCalendarBuilder().PriceOn(day(2026, 9, 2), 10).Build(),
		Rules:    []pricing.Rule{builder.NewRuleBuilder().WithValue(50).Build()},
		SelectedRooms: []pricing.RoomRate{
			{RoomID: uuid.New(), NightlyRate: 80},
			{RoomID: uuid.New(), NightlyRate: 120},
		},
	}

	b, err := pricing.QuoteStay(in)
	require.NoError(t, err)
	// (80 + 120) * 3 nights, flat.
	assert.InDelta(t, 600.0, b.Subtotal, 1e-9)
	assert.False(t, b.HasDiscount)
}

func TestQuoteStay_Fees(t *testing.T) {
	s := stay(t, day(2026, 9, 1), day(2026, 9, 4))
	in := pricing.QuoteInput{
		Stay:        s,
		UnitKind:    pricing.UnitAccommodation,
		NightlyBase: 200,
		CleaningFee: 60,
		Rules:       []pricing.Rule{builder.NewRuleBuilder().WithValue(15).Build()},
		Fees:        []pricing.AdminFee{builder.ServiceFee(10), builder.TaxFee(8)},
	}

	b, err := pricing.QuoteStay(in)
	require.NoError(t, err)
	assert.InDelta(t, 510.0, b.Subtotal, 1e-9)
	// Cleaning fee passes through untouched by rules.
	assert.InDelta(t, 60.0, b.CleaningFee, 1e-9)
	assert.InDelta(t, 51.0, b.ServiceFee, 1e-9)
	// (510 + 51 + 60) * 0.08 = 49.68
	assert.InDelta(t, 49.68, b.Taxes, 1e-9)
	assert.InDelta(t, 670.68, b.Total, 1e-9)
	assert.InDelta(t, b.Subtotal+b.CleaningFee+b.ServiceFee+b.Taxes, b.Total, 1e-9)
}

func TestQuoteStay_Determinism(t *testing.T) {
	in := pricing.QuoteInput{
		Stay:        stay(t, day(2026, 9, 1), day(2026, 9, 8)),
		UnitKind:    pricing.UnitAccommodation,
		NightlyBase: 137.5,
		CleaningFee: 25,
		Calendar: builder.NewCalendarBuilder().
			PriceOn(day(2026, 9, 3), 99.99).
			Build(),
		Rules: []pricing.Rule{
			builder.NewRuleBuilder().WithValue(12).WithPriority(5).Build(),
			builder.NewRuleBuilder().WithKind(pricing.RuleWeekend).WithValue(20).WithDaysOfWeek(day(2026, 9, 5).Weekday()).Build(),
			builder.NewRuleBuilder().WithAdjustment(pricing.AdjustFixed, 7).WithPriority(1).Build(),
		},
		Fees: []pricing.AdminFee{builder.ServiceFee(10), builder.TaxFee(8)},
	}

	first, err := pricing.QuoteStay(in)
	require.NoError(t, err)
	for range 20 {
		got, err := pricing.QuoteStay(in)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestQuoteStay_NonNegativity(t *testing.T) {
	in := pricing.QuoteInput{
		Stay:        stay(t, day(2026, 9, 1), day(2026, 9, 3)),
		UnitKind:    pricing.UnitAccommodation,
		NightlyBase: 50,
		Rules: []pricing.Rule{
			builder.NewRuleBuilder().WithValue(100).WithPriority(2).Build(),
			builder.NewRuleBuilder().WithAdjustment(pricing.AdjustFixed, 500).WithPriority(1).Build(),
		},
	}

	b, err := pricing.QuoteStay(in)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, b.Subtotal, 0.0)
	assert.GreaterOrEqual(t, b.Total, 0.0)
}

func TestQuoteStay_WeekendRulePerNight(t *testing.T) {
	// A weekend markup constrained to Saturday must land only on the
	// Saturday night of the stay, because nightly totals re-select rules
	// with each night as its own 1-night sub-window.
	var saturday time.Time
	for d := day(2026, 9, 1); ; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday {
			saturday = d
			break
		}
	}

	in := pricing.QuoteInput{
		Stay:        stay(t, saturday.AddDate(0, 0, -1), saturday.AddDate(0, 0, 2)), // Fri..Sun
		UnitKind:    pricing.UnitAccommodation,
		NightlyBase: 100,
		Rules: []pricing.Rule{
			builder.NewRuleBuilder().
				WithKind(pricing.RuleWeekend).
				WithValue(50).
				WithDaysOfWeek(time.Saturday).
				Build(),
			builder.NewRuleBuilder().WithValue(20).Build(),
		},
	}

	b, err := pricing.QuoteStay(in)
	require.NoError(t, err)
	// Fri and Sun nights: 100 * 0.8 = 80 each. Sat night: both rules apply,
	// equal priority keeps input order, so (100 + 50) * 0.8 = 120.
	// Rule total 280 beats the calendar total of 300.
	assert.InDelta(t, 280.0, b.Subtotal, 1e-9)
}
