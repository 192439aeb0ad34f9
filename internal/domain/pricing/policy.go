package pricing

// Policy identifiers for behavior that is deliberate business policy rather
// than incidental implementation. Tests assert on these instead of probing
// the code paths that implement them.

type AvailabilityPolicy string

// DefaultAvailable: a date with no calendar entry is bookable. Only an
// explicit entry with is_available = false blocks a date. An empty calendar
// means every date is open.
const DefaultAvailable AvailabilityPolicy = "default_available"

type RoomPricingPolicy string

// FlatRoomRate: when specific rooms are selected for a stay, the total is
// each room's flat nightly rate times the night count. Calendar overrides
// and pricing rules do not apply to room-level selections.
const FlatRoomRate RoomPricingPolicy = "flat_room_rate"

type ReconciliationPolicy string

// BestDealWins: the calendar-override total and the rule-engine total are
// computed independently and reconciled with min(). The two discount
// mechanisms never stack against the traveler.
const BestDealWins ReconciliationPolicy = "best_deal_wins"
