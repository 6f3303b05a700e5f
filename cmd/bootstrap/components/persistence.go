package components

import (
	"salon-booking/internal/infra/readstore"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction inside the unit of work,
// so only the read side is registered here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.CredentialStore)),
		),
		// Client
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClientReadQueries)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		// Loyalty
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LoyaltyReadQueries)),
		),
		fx.Annotate(
			readstore.NewLoyaltyReadStore,
			fx.As(new(queries.LoyaltyReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.AccountingReadStore)),
		),
		// Organization
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrganizationReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrganizationReadStore,
			fx.As(new(queries.OrganizationReadStore)),
			fx.As(new(commands.OrganizationLookup)),
		),
		// GiftCard
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.GiftCardReadQueries)),
		),
		fx.Annotate(
			readstore.NewGiftCardReadStore,
			fx.As(new(queries.GiftCardReadStore)),
		),
		// Marketing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MarketingReadQueries)),
		),
		fx.Annotate(
			readstore.NewMarketingReadStore,
			fx.As(new(queries.MarketingReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
