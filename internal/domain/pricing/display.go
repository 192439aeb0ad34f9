package pricing

// DisplayInput feeds the browse-time price hint for a list card. No dates
// exist yet, so rule constraints are ignored and only discounts count;
// markups never surface on cards.
type DisplayInput struct {
	BasePrice       float64
	Rules           []Rule
	HasRooms        bool
	LowestRoomPrice *float64
}

type DisplayQuote struct {
	DisplayPrice       float64
	OriginalPrice      float64
	DiscountPercentage float64
	HasDiscount        bool
	ShowFromLabel      bool
}

// DisplayPrice projects the indicative nightly price shown before a
// traveler picks dates. When the unit exposes rooms and a lowest room rate
// is known, that rate is the baseline and the card renders "from $X".
func DisplayPrice(in DisplayInput) (DisplayQuote, error) {
	base := in.BasePrice
	showFrom := false
	if in.HasRooms && in.LowestRoomPrice != nil {
		base = *in.LowestRoomPrice
		showFrom = true
	}
	if base < 0 {
		return DisplayQuote{}, ErrNegativeBasePrice
	}

	comp := ApplyRules(base, SelectForDisplay(in.Rules))
	return DisplayQuote{
		DisplayPrice:       round2(comp.AdjustedPrice),
		OriginalPrice:      round2(base),
		DiscountPercentage: round2(comp.DiscountPercentage),
		HasDiscount:        comp.HasDiscount,
		ShowFromLabel:      showFrom,
	}, nil
}
