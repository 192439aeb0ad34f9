package queries

import (
	"context"
	"errors"
	"time"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/internal/pkg/clock"
	"tripnest-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type QuoteView struct {
	UnitID             uuid.UUID `json:"unit_id"`
	CheckIn            time.Time `json:"check_in"`
	CheckOut           time.Time `json:"check_out"`
	Nights             int       `json:"nights"`
	BasePrice          float64   `json:"base_price"`
	Subtotal           float64   `json:"subtotal"`
	DiscountAmount     float64   `json:"discount_amount"`
	DiscountPercentage float64   `json:"discount_percentage"`
	HasDiscount        bool      `json:"has_discount"`
	CleaningFee        float64   `json:"cleaning_fee"`
	ServiceFee         float64   `json:"service_fee"`
	Taxes              float64   `json:"taxes"`
	Total              float64   `json:"total"`
	GeneratedAt        time.Time `json:"generated_at"`
}

type DisplayPriceView struct {
	UnitID             uuid.UUID `json:"unit_id"`
	DisplayPrice       float64   `json:"display_price"`
	OriginalPrice      float64   `json:"original_price"`
	DiscountPercentage float64   `json:"discount_percentage"`
	HasDiscount        bool      `json:"has_discount"`
	ShowFromLabel      bool      `json:"show_from_label"`
}

type CalendarDayView struct {
	Date        string  `json:"date"`
	IsAvailable bool    `json:"is_available"`
	Price       float64 `json:"price"`
}

// ListingSnapshot is the listing state the pricing shell reads. LowestRoomPrice
// is nil when the listing exposes no rooms or none have a rate yet.
type ListingSnapshot struct {
	ID                uuid.UUID
	Name              string
	Kind              pricing.UnitKind
	NightlyBase       float64
	CleaningFee       float64
	HasRooms          bool
	LowestRoomPrice   *float64
	Latitude          float64
	Longitude         float64
	HideExactLocation bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type QuoteRequest struct {
	UnitID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	RoomIDs  []uuid.UUID
}

// Read store ports. Implementations fetch each collection independently;
// there is no transactional snapshot guarantee and the engine does not
// need one.
type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	FindRoomRates(ctx context.Context, listingID uuid.UUID, roomIDs []uuid.UUID) ([]pricing.RoomRate, error)
}

type CalendarReadStore interface {
	FindEntries(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]pricing.CalendarEntry, error)
}

type RuleReadStore interface {
	FindActiveByUnit(ctx context.Context, unitID uuid.UUID) ([]pricing.Rule, error)
}

type FeeReadStore interface {
	FindBookingFees(ctx context.Context) ([]pricing.AdminFee, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error)
	DisplayPrice(ctx context.Context, unitID uuid.UUID) (*DisplayPriceView, error)
	Calendar(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]CalendarDayView, error)
}

type pricingQueriesImpl struct {
	listings  ListingReadStore
	calendars CalendarReadStore
	rules     RuleReadStore
	fees      FeeReadStore
	clock     clock.Clock
}

func NewPricingQueries(
	listings ListingReadStore,
	calendars CalendarReadStore,
	rules RuleReadStore,
	fees FeeReadStore,
	clk clock.Clock,
) PricingQueries {
	return &pricingQueriesImpl{
		listings:  listings,
		calendars: calendars,
		rules:     rules,
		fees:      fees,
		clock:     clk,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	stay, err := pricing.NewStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	listing, err := q.listings.FindByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	in := pricing.QuoteInput{
		Stay:        stay,
		UnitKind:    listing.Kind,
		NightlyBase: listing.NightlyBase,
		CleaningFee: listing.CleaningFee,
	}

	// Each collection degrades to its empty value when the store has
	// nothing; missing data is never fatal here.
	entries, err := q.calendars.FindEntries(ctx, req.UnitID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, err
	}
	in.Calendar = pricing.NewCalendar(entries)

	in.Rules, err = q.rules.FindActiveByUnit(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	in.Fees, err = q.fees.FindBookingFees(ctx)
	if err != nil {
		return nil, err
	}

	if len(req.RoomIDs) > 0 {
		in.SelectedRooms, err = q.listings.FindRoomRates(ctx, req.UnitID, req.RoomIDs)
		if err != nil {
			return nil, err
		}
	}

	breakdown, err := pricing.QuoteStay(in)
	if err != nil {
		return nil, markQuoteErr(err)
	}

	return &QuoteView{
		UnitID:             req.UnitID,
		CheckIn:            stay.CheckIn(),
		CheckOut:           stay.CheckOut(),
		Nights:             breakdown.Nights,
		BasePrice:          breakdown.BasePrice,
		Subtotal:           breakdown.Subtotal,
		DiscountAmount:     breakdown.DiscountAmount,
		DiscountPercentage: breakdown.DiscountPercentage,
		HasDiscount:        breakdown.HasDiscount,
		CleaningFee:        breakdown.CleaningFee,
		ServiceFee:         breakdown.ServiceFee,
		Taxes:              breakdown.Taxes,
		Total:              breakdown.Total,
		GeneratedAt:        q.clock.Now(),
	}, nil
}

func (q *pricingQueriesImpl) DisplayPrice(ctx context.Context, unitID uuid.UUID) (*DisplayPriceView, error) {
	listing, err := q.listings.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	rules, err := q.rules.FindActiveByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.DisplayPrice(pricing.DisplayInput{
		BasePrice:       listing.NightlyBase,
		Rules:           rules,
		HasRooms:        listing.HasRooms,
		LowestRoomPrice: listing.LowestRoomPrice,
	})
	if err != nil {
		return nil, markQuoteErr(err)
	}

	return &DisplayPriceView{
		UnitID:             unitID,
		DisplayPrice:       quote.DisplayPrice,
		OriginalPrice:      quote.OriginalPrice,
		DiscountPercentage: quote.DiscountPercentage,
		HasDiscount:        quote.HasDiscount,
		ShowFromLabel:      quote.ShowFromLabel,
	}, nil
}

func (q *pricingQueriesImpl) Calendar(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]CalendarDayView, error) {
	span, err := pricing.NewStayRange(from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	listing, err := q.listings.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	entries, err := q.calendars.FindEntries(ctx, unitID, span.CheckIn(), span.CheckOut())
	if err != nil {
		return nil, err
	}
	cal := pricing.NewCalendar(entries)

	days := make([]CalendarDayView, 0, span.Nights())
	for d := span.CheckIn(); d.Before(span.CheckOut()); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDayView{
			Date:        d.Format(pricing.DateLayout),
			IsAvailable: cal.IsAvailable(d),
			Price:       cal.PriceForDate(d, listing.NightlyBase),
		})
	}
	return days, nil
}

func markQuoteErr(err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidStayRange):
		return errs.Mark(err, errs.ErrInvalidStayRange)
	case errors.Is(err, pricing.ErrUnavailableDates):
		return errs.Mark(err, errs.ErrDatesUnavailable)
	case errors.Is(err, pricing.ErrStayBelowMinimum), errors.Is(err, pricing.ErrStayAboveMaximum):
		return errs.Mark(err, errs.ErrStayBoundsViolated)
	case errors.Is(err, pricing.ErrNegativeBasePrice):
		return errs.Mark(err, errs.ErrNegativeBasePrice)
	default:
		return err
	}
}
