package pricing

import (
	"time"

	"github.com/google/uuid"
)

// RuleKind tags what a rule does to the price. Discounts subtract, seasonal
// and weekend adjustments add.
type RuleKind string

const (
	RuleDiscount RuleKind = "discount"
	RuleSeasonal RuleKind = "seasonal"
	RuleWeekend  RuleKind = "weekend"
)

// AdjustmentKind tags how the magnitude is interpreted.
type AdjustmentKind string

const (
	AdjustPercentage AdjustmentKind = "percentage"
	AdjustFixed      AdjustmentKind = "fixed"
)

// Rule is one supplier-authored price adjustment. Scope ids are mutually
// exclusive; a rule with RoomID set also belongs to the room's parent
// accommodation and outranks unit-wide rules for that room.
type Rule struct {
	ID              uuid.UUID
	AccommodationID *uuid.UUID
	VehicleID       *uuid.UUID
	RoomID          *uuid.UUID
	Kind            RuleKind
	Adjustment      AdjustmentKind
	Value           float64
	StartDate       *time.Time
	EndDate         *time.Time
	DaysOfWeek      []time.Weekday
	MinNights       *int
	MaxNights       *int
	Priority        int
	IsActive        bool
}

func (r Rule) IsRoomScoped() bool {
	return r.RoomID != nil
}

// appliesTo reports whether the rule qualifies for a concrete stay. A rule
// missing either validity bound is treated as always in window; the weekday
// constraint checks the check-in day only.
func (r Rule) appliesTo(stay StayRange) bool {
	if !r.IsActive {
		return false
	}
	if r.StartDate != nil && r.EndDate != nil {
		if stay.CheckIn().After(truncateToDay(*r.EndDate)) || stay.CheckOut().Before(truncateToDay(*r.StartDate)) {
			return false
		}
	}
	nights := stay.Nights()
	if r.MinNights != nil && nights < *r.MinNights {
		return false
	}
	if r.MaxNights != nil && nights > *r.MaxNights {
		return false
	}
	if len(r.DaysOfWeek) > 0 {
		weekday := stay.CheckIn().Weekday()
		found := false
		for _, d := range r.DaysOfWeek {
			if d == weekday {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SelectApplicable filters rules down to those qualifying for the stay.
func SelectApplicable(rules []Rule, stay StayRange) []Rule {
	selected := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.appliesTo(stay) {
			selected = append(selected, r)
		}
	}
	return selected
}

// SelectForDisplay picks the rules that participate in the date-agnostic
// list-card projection: only active discounts, with date, night-count and
// weekday constraints deliberately ignored since no dates exist yet.
func SelectForDisplay(rules []Rule) []Rule {
	selected := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive && r.Kind == RuleDiscount {
			selected = append(selected, r)
		}
	}
	return selected
}
