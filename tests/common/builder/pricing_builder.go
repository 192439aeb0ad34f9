//go:build unit || e2e

package builder

import (
	"time"

	"tripnest-api/internal/domain/pricing"

	"github.com/google/uuid"
)

type RuleBuilder struct {
	ID              uuid.UUID
	AccommodationID *uuid.UUID
	VehicleID       *uuid.UUID
	RoomID          *uuid.UUID
	Kind            pricing.RuleKind
	Adjustment      pricing.AdjustmentKind
	Value           float64
	StartDate       *time.Time
	EndDate         *time.Time
	DaysOfWeek      []time.Weekday
	MinNights       *int
	MaxNights       *int
	Priority        int
	IsActive        bool
}

func NewRuleBuilder() *RuleBuilder {
	unitID := uuid.New()
	return &RuleBuilder{
		ID:              uuid.New(),
		AccommodationID: &unitID,
		Kind:            pricing.RuleDiscount,
		Adjustment:      pricing.AdjustPercentage,
		Value:           10,
		IsActive:        true,
	}
}

func (b *RuleBuilder) WithKind(kind pricing.RuleKind) *RuleBuilder {
	b.Kind = kind
	return b
}

func (b *RuleBuilder) WithAdjustment(adj pricing.AdjustmentKind, value float64) *RuleBuilder {
	b.Adjustment = adj
	b.Value = value
	return b
}

func (b *RuleBuilder) WithValue(value float64) *RuleBuilder {
	b.Value = value
	return b
}

func (b *RuleBuilder) WithPriority(priority int) *RuleBuilder {
	b.Priority = priority
	return b
}

func (b *RuleBuilder) WithRoom(roomID uuid.UUID) *RuleBuilder {
	b.RoomID = &roomID
	return b
}

func (b *RuleBuilder) WithWindow(start, end time.Time) *RuleBuilder {
	b.StartDate = &start
	b.EndDate = &end
	return b
}

func (b *RuleBuilder) WithDaysOfWeek(days ...time.Weekday) *RuleBuilder {
	b.DaysOfWeek = days
	return b
}

func (b *RuleBuilder) WithMinNights(n int) *RuleBuilder {
	b.MinNights = &n
	return b
}

func (b *RuleBuilder) WithMaxNights(n int) *RuleBuilder {
	b.MaxNights = &n
	return b
}

func (b *RuleBuilder) Inactive() *RuleBuilder {
	b.IsActive = false
	return b
}

func (b *RuleBuilder) Build() pricing.Rule {
	return pricing.Rule{
		ID:              b.ID,
		AccommodationID: b.AccommodationID,
		VehicleID:       b.VehicleID,
		RoomID:          b.RoomID,
		Kind:            b.Kind,
		Adjustment:      b.Adjustment,
		Value:           b.Value,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		DaysOfWeek:      b.DaysOfWeek,
		MinNights:       b.MinNights,
		MaxNights:       b.MaxNights,
		Priority:        b.Priority,
		IsActive:        b.IsActive,
	}
}

type CalendarBuilder struct {
	UnitID  uuid.UUID
	Entries []pricing.CalendarEntry
}

func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{UnitID: uuid.New()}
}

func (b *CalendarBuilder) BlockedOn(date time.Time) *CalendarBuilder {
	b.Entries = append(b.Entries, pricing.CalendarEntry{
		UnitID:      b.UnitID,
		Date:        date,
		IsAvailable: false,
	})
	return b
}

func (b *CalendarBuilder) AvailableOn(date time.Time) *CalendarBuilder {
	b.Entries = append(b.Entries, pricing.CalendarEntry{
		UnitID:      b.UnitID,
		Date:        date,
		IsAvailable: true,
	})
	return b
}

func (b *CalendarBuilder) PriceOn(date time.Time, price float64) *CalendarBuilder {
	b.Entries = append(b.Entries, pricing.CalendarEntry{
		UnitID:        b.UnitID,
		Date:          date,
		IsAvailable:   true,
		PriceOverride: &price,
	})
	return b
}

func (b *CalendarBuilder) MinStayOn(date time.Time, nights int) *CalendarBuilder {
	b.Entries = append(b.Entries, pricing.CalendarEntry{
		UnitID:      b.UnitID,
		Date:        date,
		IsAvailable: true,
		MinimumStay: &nights,
	})
	return b
}

func (b *CalendarBuilder) MaxStayOn(date time.Time, nights int) *CalendarBuilder {
	b.Entries = append(b.Entries, pricing.CalendarEntry{
		UnitID:      b.UnitID,
		Date:        date,
		IsAvailable: true,
		MaximumStay: &nights,
	})
	return b
}

func (b *CalendarBuilder) Build() pricing.Calendar {
	return pricing.NewCalendar(b.Entries)
}

func ServiceFee(percent float64) pricing.AdminFee {
	return pricing.AdminFee{
		Name:            pricing.FeeNameServiceFee,
		FeeType:         pricing.FeePercentage,
		Amount:          percent,
		AppliesTo:       pricing.FeeBoth,
		CalculationType: pricing.FeeAtBooking,
		IsActive:        true,
	}
}

func TaxFee(percent float64) pricing.AdminFee {
	return pricing.AdminFee{
		Name:            pricing.FeeNameTax,
		FeeType:         pricing.FeePercentage,
		Amount:          percent,
		AppliesTo:       pricing.FeeBoth,
		CalculationType: pricing.FeeAtBooking,
		IsActive:        true,
	}
}
