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

type RuleReadStore struct {
	db DB
}

func NewRuleReadStore(db DB) *RuleReadStore {
	return &RuleReadStore{db: db}
}

// Room-scoped rules belong to the room's parent listing, so a unit's rule
// set includes rules on any of its rooms.
const activeRulesByUnitSQL = `
SELECT id, accommodation_id, vehicle_id, room_id,
       rule_type, adjustment_type, adjustment_value,
       start_date, end_date, days_of_week,
       min_nights, max_nights, priority, is_active
FROM pricing_rules
WHERE is_active
  AND (accommodation_id = $1
       OR vehicle_id = $1
       OR room_id IN (SELECT id FROM rooms WHERE listing_id = $1))
ORDER BY priority DESC, id
`

func (r *RuleReadStore) FindActiveByUnit(ctx context.Context, unitID uuid.UUID) ([]pricing.Rule, error) {
	rows, err := r.db.Query(ctx, activeRulesByUnitSQL, unitID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		var (
			rule            pricing.Rule
			accommodationID pgtype.UUID
			vehicleID       pgtype.UUID
			roomID          pgtype.UUID
			ruleType        string
			adjustmentType  string
			adjustmentValue pgtype.Numeric
			startDate       pgtype.Date
			endDate         pgtype.Date
			daysOfWeek      []int32
			minNights       pgtype.Int4
			maxNights       pgtype.Int4
		)
		err := rows.Scan(
			&rule.ID,
			&accommodationID,
			&vehicleID,
			&roomID,
			&ruleType,
			&adjustmentType,
			&adjustmentValue,
			&startDate,
			&endDate,
			&daysOfWeek,
			&minNights,
			&maxNights,
			&rule.Priority,
			&rule.IsActive,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}

		rule.AccommodationID = pgconv.UUIDPtrFromPgtype(accommodationID)
		rule.VehicleID = pgconv.UUIDPtrFromPgtype(vehicleID)
		rule.RoomID = pgconv.UUIDPtrFromPgtype(roomID)
		rule.Kind = pricing.RuleKind(ruleType)
		rule.Adjustment = pricing.AdjustmentKind(adjustmentType)
		if rule.Value, err = pgconv.Float64FromNumeric(adjustmentValue); err != nil {
			return nil, infra.WrapRepoErr("failed to convert adjustment value", err)
		}
		rule.StartDate = pgconv.DatePtrFromPgtype(startDate)
		rule.EndDate = pgconv.DatePtrFromPgtype(endDate)
		rule.DaysOfWeek = toWeekdays(daysOfWeek)
		rule.MinNights = pgconv.IntPtrFromPgtype(minNights)
		rule.MaxNights = pgconv.IntPtrFromPgtype(maxNights)

		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rules", err)
	}
	return rules, nil
}

// toWeekdays maps the stored 0=Sunday..6=Saturday ints onto time.Weekday,
// which uses the same numbering.
func toWeekdays(days []int32) []time.Weekday {
	if len(days) == 0 {
		return nil
	}
	result := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			result = append(result, time.Weekday(d))
		}
	}
	return result
}
