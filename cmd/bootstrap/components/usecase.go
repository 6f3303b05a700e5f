package components

import (
	"salon-booking/internal/infra/qrcode"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		qrcode.NewEncoder,
		fx.As(new(queries.GiftCardQREncoder)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewReservationCommands,
		commands.NewValidationCommands,
		commands.NewGiftCardCommands,
		commands.NewOrganizationCommands,
		commands.NewMarketingCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewClientQueries,
		queries.NewReservationQueries,
		queries.NewValidationQueries,
		queries.NewGiftCardQueries,
		queries.NewOrganizationQueries,
		queries.NewAccountingQueries,
		queries.NewMarketingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
