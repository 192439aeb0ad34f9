package response

import (
	"time"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	UnitID             uuid.UUID `json:"unitId"`
	CheckIn            string    `json:"checkIn"`
	CheckOut           string    `json:"checkOut"`
	Nights             int       `json:"nights"`
	BasePrice          float64   `json:"basePrice"`
	Subtotal           float64   `json:"subtotal"`
	DiscountAmount     float64   `json:"discountAmount"`
	DiscountPercentage float64   `json:"discountPercentage"`
	HasDiscount        bool      `json:"hasDiscount"`
	CleaningFee        float64   `json:"cleaningFee"`
	ServiceFee         float64   `json:"serviceFee"`
	Taxes              float64   `json:"taxes"`
	Total              float64   `json:"total"`
	GeneratedAt        time.Time `json:"generatedAt"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		UnitID:             rm.UnitID,
		CheckIn:            rm.CheckIn.Format(pricing.DateLayout),
		CheckOut:           rm.CheckOut.Format(pricing.DateLayout),
		Nights:             rm.Nights,
		BasePrice:          rm.BasePrice,
		Subtotal:           rm.Subtotal,
		DiscountAmount:     rm.DiscountAmount,
		DiscountPercentage: rm.DiscountPercentage,
		HasDiscount:        rm.HasDiscount,
		CleaningFee:        rm.CleaningFee,
		ServiceFee:         rm.ServiceFee,
		Taxes:              rm.Taxes,
		Total:              rm.Total,
		GeneratedAt:        rm.GeneratedAt,
	}
}

type DisplayPriceResponse struct {
	UnitID             uuid.UUID `json:"unitId"`
	DisplayPrice       float64   `json:"displayPrice"`
	OriginalPrice      float64   `json:"originalPrice"`
	DiscountPercentage float64   `json:"discountPercentage"`
	HasDiscount        bool      `json:"hasDiscount"`
	ShowFromLabel      bool      `json:"showFromLabel"`
}

func FromDisplayPriceView(rm *queries.DisplayPriceView) *DisplayPriceResponse {
	return &DisplayPriceResponse{
		UnitID:             rm.UnitID,
		DisplayPrice:       rm.DisplayPrice,
		OriginalPrice:      rm.OriginalPrice,
		DiscountPercentage: rm.DiscountPercentage,
		HasDiscount:        rm.HasDiscount,
		ShowFromLabel:      rm.ShowFromLabel,
	}
}

type CalendarDayResponse struct {
	Date        string  `json:"date"`
	IsAvailable bool    `json:"isAvailable"`
	Price       float64 `json:"price"`
}

func FromCalendarDayViews(days []queries.CalendarDayView) []CalendarDayResponse {
	result := make([]CalendarDayResponse, len(days))
	for i, d := range days {
		result[i] = CalendarDayResponse{
			Date:        d.Date,
			IsAvailable: d.IsAvailable,
			Price:       d.Price,
		}
	}
	return result
}
