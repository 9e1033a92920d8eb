package bootstrap

import (
	"context"
	"log/slog"

	"rentdesk/internal/infra/jobs"
	"rentdesk/internal/infra/mailer"
	"rentdesk/internal/infra/repository"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/config"
	"rentdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewDispatcher,
	),
	fx.Invoke(StartDispatcher),
)

func NewDispatcher(
	cfg config.Config,
	notifications *repository.NotificationRepository,
	bookings queries.BookingQueries,
	m mailer.Mailer,
	clk clock.Clock,
	logger *slog.Logger,
) *jobs.Dispatcher {
	return jobs.NewDispatcher(cfg.Jobs, notifications, bookings, m, clk, logger)
}

func StartDispatcher(lc fx.Lifecycle, dispatcher *jobs.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return dispatcher.Start()
		},
		OnStop: func(_ context.Context) error {
			dispatcher.Stop()
			return nil
		},
	})
}
