package queries

import (
	"context"
	"time"

	"tripnest-api/internal/pkg/geomask"

	"github.com/google/uuid"
)

type ListingView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	NightlyBase float64   `json:"nightly_base"`
	CleaningFee float64   `json:"cleaning_fee"`
	HasRooms    bool      `json:"has_rooms"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	// True when the returned coordinates are obfuscated.
	LocationMasked bool      `json:"location_masked"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	listings ListingReadStore
}

func NewListingQueries(listings ListingReadStore) ListingQueries {
	return &listingQueriesImpl{listings: listings}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	snap, err := q.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lat, lng := snap.Latitude, snap.Longitude
	if snap.HideExactLocation {
		lat, lng = geomask.Mask(snap.ID, lat, lng)
	}

	return &ListingView{
		ID:             snap.ID,
		Name:           snap.Name,
		Kind:           string(snap.Kind),
		NightlyBase:    snap.NightlyBase,
		CleaningFee:    snap.CleaningFee,
		HasRooms:       snap.HasRooms,
		Latitude:       lat,
		Longitude:      lng,
		LocationMasked: snap.HideExactLocation,
		CreatedAt:      snap.CreatedAt,
		UpdatedAt:      snap.UpdatedAt,
	}, nil
}
