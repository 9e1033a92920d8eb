package components

import (
	"rentdesk/internal/infra/db"
	"rentdesk/internal/infra/readstore"
	"rentdesk/internal/infra/repository"
	"rentdesk/internal/infra/uow"
	"rentdesk/internal/usecase/commands"
	"rentdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
			fx.As(new(queries.VehicleRateStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewDriverReadStore,
			fx.As(new(queries.DriverReadStore)),
		),
		fx.Annotate(
			readstore.NewFinanceReadStore,
			fx.As(new(queries.FinanceReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(uow.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(new(commands.VehicleReader)),
			fx.As(new(commands.VehicleWriter)),
		),
		// The dispatcher drives the notification repository directly, so
		// the concrete type is provided alongside the command port.
		repository.NewNotificationRepository,
		func(r *repository.NotificationRepository) commands.NotificationRepository { return r },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
