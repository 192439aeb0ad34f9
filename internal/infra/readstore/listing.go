package readstore

import (
	"context"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/internal/infra"
	"tripnest-api/internal/pkg/pgconv"
	"tripnest-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DB is the subset of pgxpool.Pool the read stores use.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ListingReadStore struct {
	db DB
}

func NewListingReadStore(db DB) *ListingReadStore {
	return &ListingReadStore{db: db}
}

const listingByIDSQL = `
SELECT l.id,
       l.name,
       l.kind,
       l.nightly_base,
       l.cleaning_fee,
       l.latitude,
       l.longitude,
       l.hide_exact_location,
       l.created_at,
       l.updated_at,
       EXISTS (SELECT 1 FROM rooms r WHERE r.listing_id = l.id)             AS has_rooms,
       (SELECT MIN(r.nightly_rate) FROM rooms r WHERE r.listing_id = l.id)  AS lowest_room_price
FROM listings l
WHERE l.id = $1
`

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingSnapshot, error) {
	var (
		snap            queries.ListingSnapshot
		kind            string
		nightlyBase     pgtype.Numeric
		cleaningFee     pgtype.Numeric
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
		lowestRoomPrice pgtype.Numeric
	)

	row := r.db.QueryRow(ctx, listingByIDSQL, id)
	err := row.Scan(
		&snap.ID,
		&snap.Name,
		&kind,
		&nightlyBase,
		&cleaningFee,
		&snap.Latitude,
		&snap.Longitude,
		&snap.HideExactLocation,
		&createdAt,
		&updatedAt,
		&snap.HasRooms,
		&lowestRoomPrice,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	snap.Kind = pricing.UnitKind(kind)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if snap.NightlyBase, err = pgconv.Float64FromNumeric(nightlyBase); err != nil {
		return nil, infra.WrapRepoErr("failed to convert listing price", err)
	}
	if snap.CleaningFee, err = pgconv.Float64FromNumeric(cleaningFee); err != nil {
		return nil, infra.WrapRepoErr("failed to convert cleaning fee", err)
	}
	if snap.LowestRoomPrice, err = pgconv.Float64PtrFromNumeric(lowestRoomPrice); err != nil {
		return nil, infra.WrapRepoErr("failed to convert lowest room price", err)
	}

	return &snap, nil
}

const roomRatesSQL = `
SELECT id, nightly_rate
FROM rooms
WHERE listing_id = $1 AND id = ANY($2)
`

func (r *ListingReadStore) FindRoomRates(ctx context.Context, listingID uuid.UUID, roomIDs []uuid.UUID) ([]pricing.RoomRate, error) {
	rows, err := r.db.Query(ctx, roomRatesSQL, listingID, roomIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room rates", err)
	}
	defer rows.Close()

	var rates []pricing.RoomRate
	for rows.Next() {
		var (
			rate pricing.RoomRate
			n    pgtype.Numeric
		)
		if err := rows.Scan(&rate.RoomID, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room rate", err)
		}
		if rate.NightlyRate, err = pgconv.Float64FromNumeric(n); err != nil {
			return nil, infra.WrapRepoErr("failed to convert room rate", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rates", err)
	}

	if len(rates) != len(roomIDs) {
		return nil, infra.WrapRepoErr("room not found for listing", pgx.ErrNoRows, infra.KindNotFound)
	}
	return rates, nil
}
