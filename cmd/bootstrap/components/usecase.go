package components

import (
	"rentdesk/internal/domain/booking"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/usecase/commands"
	"rentdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDailyRatePriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewBookingStatusCommands,
		commands.NewVehicleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVehicleQueries,
		queries.NewBookingQueries,
		queries.NewPricingQueries,
		queries.NewDashboardQueries,
	),
)
