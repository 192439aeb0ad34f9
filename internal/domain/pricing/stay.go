package pricing

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayRange   = errors.New("check-out must be after check-in")
	ErrNegativeBasePrice  = errors.New("base price cannot be negative")
	ErrUnavailableDates   = errors.New("one or more dates are unavailable")
	ErrStayBelowMinimum   = errors.New("stay is shorter than the minimum allowed")
	ErrStayAboveMaximum   = errors.New("stay is longer than the maximum allowed")
)

// StayRange is a half-open [check-in, check-out) span of calendar days.
// The check-out day is the departure day and is never priced or scanned.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Night returns the i-th occupied night as its own 1-night sub-range.
func (s StayRange) Night(i int) StayRange {
	start := s.checkIn.AddDate(0, 0, i)
	return StayRange{checkIn: start, checkOut: start.AddDate(0, 0, 1)}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
