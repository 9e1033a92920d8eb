package commands

import (
	"context"
	"encoding/json"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/infra/uow"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrInvalidTransition = errs.New("invalid booking status transition")
)

type BookingStatusCommands interface {
	// Transition moves a booking along its lifecycle. Dispatch operations
	// (confirm, hand over, complete, cancel) all go through here.
	Transition(ctx context.Context, id uuid.UUID, next booking.Status) error
}

type bookingStatusCommandsImpl struct {
	bookings      BookingRepository
	notifications NotificationRepository
	uow           uow.UnitOfWork
	clock         clock.Clock
}

func NewBookingStatusCommands(
	bookings BookingRepository,
	notifications NotificationRepository,
	unitOfWork uow.UnitOfWork,
	clk clock.Clock,
) BookingStatusCommands {
	return &bookingStatusCommandsImpl{
		bookings:      bookings,
		notifications: notifications,
		uow:           unitOfWork,
		clock:         clk,
	}
}

func (c *bookingStatusCommandsImpl) Transition(ctx context.Context, id uuid.UUID, next booking.Status) error {
	entity, err := c.bookings.FindEntityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrBookingPersistence)
	}

	now := c.clock.Now()
	if err := entity.TransitionTo(next, now); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if updateErr := c.bookings.UpdateStatus(ctx, tx, id, next, now); updateErr != nil {
			return updateErr
		}
		payload, marshalErr := json.Marshal(map[string]any{
			"booking_id": id,
			"type":       "booking_status_changed",
			"status":     next.String(),
		})
		if marshalErr != nil {
			return marshalErr
		}
		return c.notifications.CreateJob(ctx, tx, "email", "booking_status_changed", payload, now)
	})
	if err != nil {
		return errs.Mark(err, ErrBookingPersistence)
	}
	return nil
}
