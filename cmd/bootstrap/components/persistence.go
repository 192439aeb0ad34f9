package components

import (
	"tripnest-api/internal/infra/readstore"
	"tripnest-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewReadDB,
	),
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Listing
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Calendar
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
		// Pricing rules
		fx.Annotate(
			readstore.NewRuleReadStore,
			fx.As(new(queries.RuleReadStore)),
		),
		// Admin fees
		fx.Annotate(
			readstore.NewFeeReadStore,
			fx.As(new(queries.FeeReadStore)),
		),
	),
)

func NewReadDB(pool *pgxpool.Pool) readstore.DB {
	return pool
}
