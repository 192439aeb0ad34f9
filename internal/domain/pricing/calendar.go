package pricing

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for calendar days (local day, no time part).
const DateLayout = "2006-01-02"

// CalendarEntry is one explicit per-date exception for a unit. Absence of an
// entry is meaningful: the date stays available at the base price.
type CalendarEntry struct {
	UnitID        uuid.UUID
	Date          time.Time
	IsAvailable   bool
	PriceOverride *float64
	MinimumStay   *int
	MaximumStay   *int
}

// Calendar indexes a unit's calendar entries by day. The zero value behaves
// as an empty calendar (everything available, per DefaultAvailable).
type Calendar struct {
	entries map[string]CalendarEntry
}

func NewCalendar(entries []CalendarEntry) Calendar {
	if len(entries) == 0 {
		return Calendar{}
	}
	m := make(map[string]CalendarEntry, len(entries))
	for _, e := range entries {
		m[dayKey(e.Date)] = e
	}
	return Calendar{entries: m}
}

func (c Calendar) Policy() AvailabilityPolicy {
	return DefaultAvailable
}

// IsAvailable reports whether date can be occupied. Per DefaultAvailable,
// only an explicit is_available = false entry blocks a date.
func (c Calendar) IsAvailable(date time.Time) bool {
	e, ok := c.entries[dayKey(date)]
	if !ok {
		return true
	}
	return e.IsAvailable
}

// PriceForDate returns the per-date override if one exists, else basePrice.
func (c Calendar) PriceForDate(date time.Time, basePrice float64) float64 {
	if e, ok := c.entries[dayKey(date)]; ok && e.PriceOverride != nil {
		return *e.PriceOverride
	}
	return basePrice
}

// IsRangeAvailable is the AND of IsAvailable over every night of the stay.
// The checkout day itself is not occupied and is excluded.
func (c Calendar) IsRangeAvailable(stay StayRange) bool {
	for d := stay.CheckIn(); d.Before(stay.CheckOut()); d = d.AddDate(0, 0, 1) {
		if !c.IsAvailable(d) {
			return false
		}
	}
	return true
}

// RangePrice sums PriceForDate over every night of the stay.
func (c Calendar) RangePrice(stay StayRange, basePrice float64) float64 {
	total := 0.0
	for d := stay.CheckIn(); d.Before(stay.CheckOut()); d = d.AddDate(0, 0, 1) {
		total += c.PriceForDate(d, basePrice)
	}
	return total
}

// StayBounds returns the tightest minimum/maximum stay overrides found on
// any night of the stay. Nil means no override anywhere in the range.
func (c Calendar) StayBounds(stay StayRange) (minStay, maxStay *int) {
	for d := stay.CheckIn(); d.Before(stay.CheckOut()); d = d.AddDate(0, 0, 1) {
		e, ok := c.entries[dayKey(d)]
		if !ok {
			continue
		}
		if e.MinimumStay != nil && (minStay == nil || *e.MinimumStay > *minStay) {
			minStay = e.MinimumStay
		}
		if e.MaximumStay != nil && (maxStay == nil || *e.MaximumStay < *maxStay) {
			maxStay = e.MaximumStay
		}
	}
	return minStay, maxStay
}

func dayKey(t time.Time) string {
	return t.Format(DateLayout)
}
