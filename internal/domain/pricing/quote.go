package pricing

import "github.com/google/uuid"

// RoomRate is one selected room's flat nightly rate.
type RoomRate struct {
	RoomID      uuid.UUID
	NightlyRate float64
}

// QuoteInput is the full snapshot a quote is computed from. The engine
// performs no I/O; the caller fetches calendar, rules and fee rows and
// hands them in. Identical snapshots always produce identical breakdowns.
type QuoteInput struct {
	Stay          StayRange
	UnitKind      UnitKind
	NightlyBase   float64
	CleaningFee   float64
	Calendar      Calendar
	Rules         []Rule
	Fees          []AdminFee
	SelectedRooms []RoomRate
}

// Breakdown is the itemized result handed back to the caller. It carries
// no identifiers and is never persisted.
//
// Invariant: Total = Subtotal + CleaningFee + ServiceFee + Taxes, Total >= 0.
type Breakdown struct {
	Nights             int
	BasePrice          float64
	Subtotal           float64
	DiscountAmount     float64
	DiscountPercentage float64
	HasDiscount        bool
	CleaningFee        float64
	ServiceFee         float64
	Taxes              float64
	Total              float64
}

// QuoteStay resolves a full price breakdown for a concrete stay.
//
// Two independent discount mechanisms exist: per-date calendar overrides
// and the rule engine. They are computed separately and reconciled with
// min() (BestDealWins) so they never stack against the traveler.
func QuoteStay(in QuoteInput) (Breakdown, error) {
	if in.NightlyBase < 0 {
		return Breakdown{}, ErrNegativeBasePrice
	}
	for _, room := range in.SelectedRooms {
		if room.NightlyRate < 0 {
			return Breakdown{}, ErrNegativeBasePrice
		}
	}

	if !in.Calendar.IsRangeAvailable(in.Stay) {
		return Breakdown{}, ErrUnavailableDates
	}

	nights := in.Stay.Nights()
	minStay, maxStay := in.Calendar.StayBounds(in.Stay)
	if minStay != nil && nights < *minStay {
		return Breakdown{}, ErrStayBelowMinimum
	}
	if maxStay != nil && nights > *maxStay {
		return Breakdown{}, ErrStayAboveMaximum
	}

	var (
		baseTotal float64
		subtotal  float64
		comp      Composition
		ruleBased bool
	)

	if len(in.SelectedRooms) > 0 {
		// FlatRoomRate: room selections skip per-night dynamic pricing.
		for _, room := range in.SelectedRooms {
			subtotal += room.NightlyRate * float64(nights)
		}
		baseTotal = subtotal
	} else {
		baseTotal = in.NightlyBase * float64(nights)
		calendarTotal := in.Calendar.RangePrice(in.Stay, in.NightlyBase)
		subtotal = calendarTotal

		if len(in.Rules) > 0 {
			ruleTotal := 0.0
			for i := 0; i < nights; i++ {
				night := in.Stay.Night(i)
				nightComp := ApplyRules(in.NightlyBase, SelectApplicable(in.Rules, night))
				ruleTotal += nightComp.AdjustedPrice
			}
			// BestDealWins reconciliation.
			if ruleTotal < calendarTotal {
				subtotal = ruleTotal
				ruleBased = true
			}
			comp = ApplyRules(in.NightlyBase, SelectApplicable(in.Rules, in.Stay))
		}
	}

	if subtotal < 0 {
		subtotal = 0
	}

	b := Breakdown{
		Nights:      nights,
		BasePrice:   round2(baseTotal),
		Subtotal:    round2(subtotal),
		CleaningFee: round2(in.CleaningFee),
	}

	if b.Subtotal < b.BasePrice {
		b.HasDiscount = true
		b.DiscountAmount = round2(b.BasePrice - b.Subtotal)
	}
	if ruleBased && comp.HasDiscount {
		b.DiscountPercentage = round2(comp.DiscountPercentage)
	}

	schedule := NewFeeSchedule(in.Fees, in.UnitKind)
	b.ServiceFee, b.Taxes = schedule.Apply(b.Subtotal, b.CleaningFee)
	b.Total = round2(b.Subtotal + b.CleaningFee + b.ServiceFee + b.Taxes)
	if b.Total < 0 {
		b.Total = 0
	}
	return b, nil
}
