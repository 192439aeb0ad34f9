package request

import (
	"time"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateQuoteRequest struct {
	UnitID   uuid.UUID   `json:"unit_id" binding:"required"`
	CheckIn  string      `json:"check_in" binding:"required"`
	CheckOut string      `json:"check_out" binding:"required"`
	RoomIDs  []uuid.UUID `json:"room_ids,omitempty"`
}

// ToQuery parses the wire dates (local calendar days, no time component).
func (r CreateQuoteRequest) ToQuery() (queries.QuoteRequest, error) {
	checkIn, err := time.Parse(pricing.DateLayout, r.CheckIn)
	if err != nil {
		return queries.QuoteRequest{}, err
	}
	checkOut, err := time.Parse(pricing.DateLayout, r.CheckOut)
	if err != nil {
		return queries.QuoteRequest{}, err
	}
	return queries.QuoteRequest{
		UnitID:   r.UnitID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomIDs:  r.RoomIDs,
	}, nil
}
