package readstore

import (
	"context"
	"time"

	"tripnest-api/internal/domain/pricing"
	"tripnest-api/internal/infra"
	"tripnest-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarReadStore struct {
	db DB
}

func NewCalendarReadStore(db DB) *CalendarReadStore {
	return &CalendarReadStore{db: db}
}

const calendarEntriesSQL = `
SELECT unit_id, date, is_available, price_override, minimum_stay, maximum_stay
FROM availability_calendar
WHERE unit_id = $1 AND date >= $2 AND date < $3
ORDER BY date
`

// FindEntries returns the explicit exceptions in [from, to). An empty
// result is normal: most units have sparse calendars.
func (r *CalendarReadStore) FindEntries(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]pricing.CalendarEntry, error) {
	rows, err := r.db.Query(ctx, calendarEntriesSQL, unitID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find calendar entries", err)
	}
	defer rows.Close()

	var entries []pricing.CalendarEntry
	for rows.Next() {
		var (
			e             pricing.CalendarEntry
			date          pgtype.Date
			priceOverride pgtype.Numeric
			minStay       pgtype.Int4
			maxStay       pgtype.Int4
		)
		if err := rows.Scan(&e.UnitID, &date, &e.IsAvailable, &priceOverride, &minStay, &maxStay); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar entry", err)
		}
		e.Date = pgconv.DateFromPgtype(date)
		if e.PriceOverride, err = pgconv.Float64PtrFromNumeric(priceOverride); err != nil {
			return nil, infra.WrapRepoErr("failed to convert price override", err)
		}
		e.MinimumStay = pgconv.IntPtrFromPgtype(minStay)
		e.MaximumStay = pgconv.IntPtrFromPgtype(maxStay)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read calendar entries", err)
	}
	return entries, nil
}
