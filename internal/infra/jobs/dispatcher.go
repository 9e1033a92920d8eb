package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"rentdesk/internal/infra/mailer"
	"rentdesk/internal/infra/repository"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/config"
	"rentdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type notificationPayload struct {
	BookingID string `json:"booking_id"`
	Type      string `json:"type"`
}

// Dispatcher drains the notification_jobs outbox on a cron schedule and
// turns each claimed job into an outbound email. Jobs whose booking has no
// customer email are marked sent so they never spin in the queue.
type Dispatcher struct {
	cron     *cron.Cron
	jobs     *repository.NotificationRepository
	bookings queries.BookingQueries
	mailer   mailer.Mailer
	clock    clock.Clock
	logger   *slog.Logger
	schedule string
	batch    int32
}

func NewDispatcher(
	cfg config.JobsConfig,
	jobs *repository.NotificationRepository,
	bookings queries.BookingQueries,
	m mailer.Mailer,
	clk clock.Clock,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		cron:     cron.New(),
		jobs:     jobs,
		bookings: bookings,
		mailer:   m,
		clock:    clk,
		logger:   logger,
		schedule: cfg.NotifySchedule,
		batch:    cfg.NotifyBatch,
	}
}

func (d *Dispatcher) Start() error {
	_, err := d.cron.AddFunc(d.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		d.DrainOnce(ctx)
	})
	if err != nil {
		return err
	}
	d.cron.Start()
	return nil
}

func (d *Dispatcher) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}

// DrainOnce claims one batch of due jobs and processes them. Failures are
// recorded per job and retried on the next tick.
func (d *Dispatcher) DrainOnce(ctx context.Context) {
	claimed, err := d.jobs.ClaimDue(ctx, d.clock.Now(), d.batch)
	if err != nil {
		d.logger.Error("failed to claim notification jobs", "error", err)
		return
	}

	for _, job := range claimed {
		if err := d.process(ctx, job); err != nil {
			d.logger.Warn("notification job failed",
				"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", err)
			if markErr := d.jobs.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
				d.logger.Error("failed to record job failure", "job_id", job.ID, "error", markErr)
			}
			continue
		}
		if err := d.jobs.MarkSent(ctx, job.ID); err != nil {
			d.logger.Error("failed to mark job sent", "job_id", job.ID, "error", err)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, job *repository.NotificationJob) error {
	var payload notificationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return fmt.Errorf("malformed booking id %q: %w", payload.BookingID, err)
	}

	view, err := d.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if view.CustomerEmail == nil || *view.CustomerEmail == "" {
		return nil
	}

	subject, plain, html := renderBookingMail(job.Topic, view)
	return d.mailer.Send(ctx, *view.CustomerEmail, subject, plain, html)
}

func renderBookingMail(topic string, view *queries.BookingView) (subject, plain, html string) {
	switch topic {
	case "booking_status_changed":
		subject = fmt.Sprintf("Your booking is now %s", view.Status)
	default:
		subject = "We received your booking"
	}

	plain = fmt.Sprintf(
		"Hi %s,\n\nBooking for %s (%s)\nPickup: %s\nReturn: %s\nTotal: Rp%d\nStatus: %s\n",
		view.CustomerName, view.VehicleName, view.VehicleCode,
		view.PickupAt.Format(time.RFC1123), view.ReturnAt.Format(time.RFC1123),
		view.TotalAmount, view.Status,
	)
	html = fmt.Sprintf(
		"<p>Hi %s,</p><p>Booking for <strong>%s</strong> (%s)</p><ul><li>Pickup: %s</li><li>Return: %s</li><li>Total: Rp%d</li><li>Status: %s</li></ul>",
		view.CustomerName, view.VehicleName, view.VehicleCode,
		view.PickupAt.Format(time.RFC1123), view.ReturnAt.Format(time.RFC1123),
		view.TotalAmount, view.Status,
	)
	return subject, plain, html
}
