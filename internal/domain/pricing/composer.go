package pricing

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Composition is the result of applying an ordered rule sequence to one
// base price. DiscountPercentage is the additive sum of each discount
// rule's contribution, not a recomputation from final vs. original; callers
// display it as "N% off" and the numbers must match what suppliers entered.
type Composition struct {
	BasePrice          float64
	AdjustedPrice      float64
	DiscountPercentage float64
	HasDiscount        bool
	RulesApplied       []uuid.UUID
}

// ApplyRules orders the rules (room-scoped before unit-wide, then higher
// priority first) and applies each to the running price left by the
// previous one. The running price may go negative mid-sequence; it is
// clamped to zero only at the end.
func ApplyRules(basePrice float64, rules []Rule) Composition {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsRoomScoped() != ordered[j].IsRoomScoped() {
			return ordered[i].IsRoomScoped()
		}
		return ordered[i].Priority > ordered[j].Priority
	})

	comp := Composition{
		BasePrice:     basePrice,
		AdjustedPrice: basePrice,
	}

	for _, r := range ordered {
		magnitude := math.Abs(r.Value)

		var delta float64
		switch r.Adjustment {
		case AdjustPercentage:
			delta = comp.AdjustedPrice * (magnitude / 100)
		case AdjustFixed:
			delta = magnitude
		default:
			continue
		}

		switch r.Kind {
		case RuleDiscount:
			comp.AdjustedPrice -= delta
			comp.HasDiscount = true
			comp.DiscountPercentage += discountShare(r, magnitude, basePrice)
		case RuleSeasonal, RuleWeekend:
			comp.AdjustedPrice += delta
		default:
			continue
		}
		comp.RulesApplied = append(comp.RulesApplied, r.ID)
	}

	if comp.AdjustedPrice < 0 {
		comp.AdjustedPrice = 0
	}
	return comp
}

// discountShare backs a fixed discount into the equivalent percentage of
// the original base price so the displayed total stays additive.
func discountShare(r Rule, magnitude, basePrice float64) float64 {
	if r.Adjustment == AdjustPercentage {
		return magnitude
	}
	if basePrice <= 0 {
		return 0
	}
	return magnitude / basePrice * 100
}
