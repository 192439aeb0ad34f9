package pricing

import (
	"math"
	"strings"
)

// UnitKind says which marketplace vertical a unit belongs to; fee rows are
// scoped to one vertical or both.
type UnitKind string

const (
	UnitAccommodation UnitKind = "accommodation"
	UnitVehicle       UnitKind = "vehicle"
)

type FeeType string

const (
	FeePercentage FeeType = "percentage"
	FeeFixed      FeeType = "fixed"
)

type FeeAppliesTo string

const (
	FeeAccommodation FeeAppliesTo = "accommodation"
	FeeVehicle       FeeAppliesTo = "vehicle"
	FeeBoth          FeeAppliesTo = "both"
)

type FeeCalculationType string

const (
	FeeAtBooking FeeCalculationType = "booking"
	FeeAtListing FeeCalculationType = "listing"
)

// AdminFee is one platform-wide fee row. Only active, booking-type rows
// matching the unit's vertical participate in price computation.
type AdminFee struct {
	Name            string
	FeeType         FeeType
	Amount          float64
	AppliesTo       FeeAppliesTo
	CalculationType FeeCalculationType
	IsActive        bool
}

// Canonical fee row names. The platform seeds one row per name; anything
// else percentage-typed is folded into the service-fee rate.
const (
	FeeNameServiceFee = "service_fee"
	FeeNameTax        = "tax"
)

// FeeSchedule is the resolved per-booking fee configuration. Missing fee
// rows are not an error; the corresponding rate is simply zero.
type FeeSchedule struct {
	serviceRate float64 // percent
	taxRate     float64 // percent
	fixedAmount float64 // flat per-booking surcharges
}

// NewFeeSchedule filters fee rows down to those that charge this booking
// and buckets them by role.
func NewFeeSchedule(fees []AdminFee, kind UnitKind) FeeSchedule {
	var s FeeSchedule
	for _, f := range fees {
		if !f.IsActive || f.CalculationType != FeeAtBooking || !feeApplies(f.AppliesTo, kind) {
			continue
		}
		if f.FeeType == FeeFixed {
			s.fixedAmount += f.Amount
			continue
		}
		if strings.EqualFold(f.Name, FeeNameTax) {
			s.taxRate += f.Amount
		} else {
			s.serviceRate += f.Amount
		}
	}
	return s
}

func (s FeeSchedule) ServiceRate() float64 { return s.serviceRate }
func (s FeeSchedule) TaxRate() float64     { return s.taxRate }

// Apply computes the platform charges on top of a resolved subtotal. The
// cleaning fee passes through untouched but feeds the tax basis. Flat
// booking fees are reported as part of the service fee.
func (s FeeSchedule) Apply(subtotal, cleaningFee float64) (serviceFee, taxes float64) {
	serviceFee = round2(subtotal*s.serviceRate/100) + s.fixedAmount
	taxes = round2((subtotal + serviceFee + cleaningFee) * s.taxRate / 100)
	return serviceFee, taxes
}

func feeApplies(scope FeeAppliesTo, kind UnitKind) bool {
	switch scope {
	case FeeBoth:
		return true
	case FeeAccommodation:
		return kind == UnitAccommodation
	case FeeVehicle:
		return kind == UnitVehicle
	default:
		return false
	}
}

// round2 rounds to cents. All engine arithmetic stays in float64 and is
// rounded only where an amount becomes part of the returned breakdown.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
