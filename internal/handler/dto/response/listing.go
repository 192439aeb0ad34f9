package response

import (
	"time"

	"tripnest-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	NightlyBase    float64   `json:"nightlyBase"`
	CleaningFee    float64   `json:"cleaningFee"`
	HasRooms       bool      `json:"hasRooms"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	LocationMasked bool      `json:"locationMasked"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromListingView(rm *queries.ListingView) (*ListingResponse, error) {
	var resp ListingResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
