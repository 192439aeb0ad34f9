package readstore

import (
	"context"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/internal/infra"
	"tripnest-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type FeeReadStore struct {
	db DB
}

func NewFeeReadStore(db DB) *FeeReadStore {
	return &FeeReadStore{db: db}
}

const bookingFeesSQL = `
SELECT name, fee_type, amount, applies_to, calculation_type, is_active
FROM admin_fees
WHERE is_active AND calculation_type = 'booking'
ORDER BY name
`

// FindBookingFees returns the active booking-time fee rows. No rows is the
// normal state for a platform that has not configured fees yet.
func (r *FeeReadStore) FindBookingFees(ctx context.Context) ([]pricing.AdminFee, error) {
	rows, err := r.db.Query(ctx, bookingFeesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin fees", err)
	}
	defer rows.Close()

	var fees []pricing.AdminFee
	for rows.Next() {
		var (
			fee             pricing.AdminFee
			feeType         string
			amount          pgtype.Numeric
			appliesTo       string
			calculationType string
		)
		if err := rows.Scan(&fee.Name, &feeType, &amount, &appliesTo, &calculationType, &fee.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan admin fee", err)
		}
		fee.FeeType = pricing.FeeType(feeType)
		fee.AppliesTo = pricing.FeeAppliesTo(appliesTo)
		fee.CalculationType = pricing.FeeCalculationType(calculationType)
		if fee.Amount, err = pgconv.Float64FromNumeric(amount); err != nil {
			return nil, infra.WrapRepoErr("failed to convert fee amount", err)
		}
		fees = append(fees, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read admin fees", err)
	}
	return fees, nil
}
