//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ListingParams struct {
	Name              string
	Kind              string
	NightlyBase       float64
	CleaningFee       float64
	Latitude          float64
	Longitude         float64
	HideExactLocation bool
}

func CreateTestListing(t *testing.T, db DBLike, p ListingParams) uuid.UUID {
	t.Helper()

	if p.Name == "" {
		p.Name = "Test Listing"
	}
	if p.Kind == "" {
		p.Kind = "accommodation"
	}

	listingID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO listings (id, name, kind, nightly_base, cleaning_fee, latitude, longitude, hide_exact_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		listingID, p.Name, p.Kind, p.NightlyBase, p.CleaningFee, p.Latitude, p.Longitude, p.HideExactLocation)
	require.NoError(t, err)

	return listingID
}

func CreateTestRoom(t *testing.T, db DBLike, listingID uuid.UUID, name string, nightlyRate float64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO rooms (id, listing_id, name, nightly_rate)
		VALUES ($1, $2, $3, $4)`,
		roomID, listingID, name, nightlyRate)
	require.NoError(t, err)

	return roomID
}

func BlockDate(t *testing.T, db DBLike, unitID uuid.UUID, date time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO availability_calendar (unit_id, date, is_available)
		VALUES ($1, $2, false)
		ON CONFLICT (unit_id, date) DO UPDATE SET is_available = false`,
		unitID, date)
	require.NoError(t, err)
}

func OverridePrice(t *testing.T, db DBLike, unitID uuid.UUID, date time.Time, price float64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO availability_calendar (unit_id, date, is_available, price_override)
		VALUES ($1, $2, true, $3)
		ON CONFLICT (unit_id, date) DO UPDATE SET is_available = true, price_override = $3`,
		unitID, date, price)
	require.NoError(t, err)
}

func SetStayBounds(t *testing.T, db DBLike, unitID uuid.UUID, date time.Time, minStay, maxStay *int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO availability_calendar (unit_id, date, is_available, minimum_stay, maximum_stay)
		VALUES ($1, $2, true, $3, $4)
		ON CONFLICT (unit_id, date) DO UPDATE SET minimum_stay = $3, maximum_stay = $4`,
		unitID, date, minStay, maxStay)
	require.NoError(t, err)
}

type RuleParams struct {
	AccommodationID *uuid.UUID
	VehicleID       *uuid.UUID
	RoomID          *uuid.UUID
	RuleType        string
	AdjustmentType  string
	AdjustmentValue float64
	StartDate       *time.Time
	EndDate         *time.Time
	DaysOfWeek      []int32
	MinNights       *int
	MaxNights       *int
	Priority        int
	IsActive        bool
}

func CreateTestRule(t *testing.T, db DBLike, p RuleParams) uuid.UUID {
	t.Helper()

	if p.RuleType == "" {
		p.RuleType = "discount"
	}
	if p.AdjustmentType == "" {
		p.AdjustmentType = "percentage"
	}

	ruleID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO pricing_rules (id, accommodation_id, vehicle_id, room_id, rule_type, adjustment_type,
		                           adjustment_value, start_date, end_date, days_of_week, min_nights, max_nights,
		                           priority, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		ruleID, p.AccommodationID, p.VehicleID, p.RoomID, p.RuleType, p.AdjustmentType,
		p.AdjustmentValue, p.StartDate, p.EndDate, p.DaysOfWeek, p.MinNights, p.MaxNights,
		p.Priority, p.IsActive)
	require.NoError(t, err)

	return ruleID
}

func CreateTestFee(t *testing.T, db DBLike, name, feeType string, amount float64) uuid.UUID {
	t.Helper()

	feeID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO admin_fees (id, name, fee_type, amount, applies_to, calculation_type, is_active)
		VALUES ($1, $2, $3, $4, 'both', 'booking', true)`,
		feeID, name, feeType, amount)
	require.NoError(t, err)

	return feeID
}

// inserts the platform fee configuration tests run against
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO admin_fees (id, name, fee_type, amount, applies_to, calculation_type, is_active) VALUES
		    (gen_random_uuid(), 'service_fee', 'percentage', 10, 'both', 'booking', true),
		    (gen_random_uuid(), 'tax', 'percentage', 8, 'both', 'booking', true);
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
