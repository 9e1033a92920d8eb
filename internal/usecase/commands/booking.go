package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/domain/customer"
	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/infra/uow"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/queries"
)

var (
	ErrVehicleNotFound     = errs.New("vehicle not found")
	ErrVehicleNotAvailable = errs.New("vehicle not available")
	ErrBookingConflict     = errs.New("vehicle already booked for an overlapping period")
	ErrBookingPersistence  = errs.New("booking persistence failed")
)

type CreateBookingResult struct {
	Booking *queries.BookingView
}

type BookingCommands interface {
	Create(ctx context.Context, req booking.Request) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	bookings      BookingRepository
	profiles      ProfileRepository
	notifications NotificationRepository
	vehicles      VehicleReader
	factory       *booking.Factory
	uow           uow.UnitOfWork
	clock         clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	profiles ProfileRepository,
	notifications NotificationRepository,
	vehicles VehicleReader,
	factory *booking.Factory,
	unitOfWork uow.UnitOfWork,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:      bookings,
		profiles:      profiles,
		notifications: notifications,
		vehicles:      vehicles,
		factory:       factory,
		uow:           unitOfWork,
		clock:         clk,
	}
}

// Create runs the full submission workflow: validate, snapshot the rate,
// price, persist the pending booking, then upsert the guest profile as a
// best-effort side channel that never fails the booking itself.
func (c *bookingCommandsImpl) Create(ctx context.Context, req booking.Request) (*CreateBookingResult, error) {
	if verr := booking.ValidateRequest(req); verr != nil {
		return nil, verr
	}

	veh, err := c.vehicles.FindByID(ctx, req.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Mark(err, ErrBookingPersistence)
	}
	if !veh.Bookable() {
		return nil, ErrVehicleNotAvailable
	}

	entity, err := c.factory.CreateBooking(booking.VehicleSpec{
		ID:        veh.ID,
		Code:      veh.Code,
		DailyRate: veh.DailyRate,
	}, req)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, err
	}

	// The booking row and its notification job commit together; the
	// profile upsert stays outside on purpose (see below).
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, createErr := c.bookings.Create(ctx, tx, entity); createErr != nil {
			return createErr
		}
		return c.enqueueCreatedNotification(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrBookingPersistence)
	}

	// Best effort: a failed upsert is logged and swallowed, the booking
	// stands regardless.
	if profileErr := c.upsertGuestProfile(ctx, entity); profileErr != nil {
		slog.Warn("customer profile upsert failed",
			"booking_id", entity.ID().String(),
			"phone", entity.CustomerPhone(),
			"error", profileErr.Error())
	}

	return &CreateBookingResult{Booking: toBookingView(entity, veh)}, nil
}

func (c *bookingCommandsImpl) upsertGuestProfile(ctx context.Context, entity *booking.Booking) error {
	profile, err := customer.NewProfile(entity.CustomerName(), entity.CustomerPhone())
	if err != nil {
		return err
	}
	return c.profiles.Upsert(ctx, profile)
}

func (c *bookingCommandsImpl) enqueueCreatedNotification(ctx context.Context, tx db.DBTX, entity *booking.Booking) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": entity.ID(),
		"type":       "booking_created",
	})
	if err != nil {
		return err
	}
	return c.notifications.CreateJob(ctx, tx, "email", "booking_created", payload, c.clock.Now())
}

func toBookingView(b *booking.Booking, veh *VehicleSnapshot) *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID(),
		VehicleID:       b.VehicleID(),
		VehicleCode:     veh.Code,
		VehicleName:     veh.Brand + " " + veh.Model,
		CustomerName:    b.CustomerName(),
		CustomerPhone:   b.CustomerPhone(),
		CustomerEmail:   b.CustomerEmail(),
		PickupAt:        b.Period().Pickup(),
		ReturnAt:        b.Period().Return(),
		PickupAddress:   b.PickupAddress(),
		ReturnAddress:   b.ReturnAddress(),
		SpecialRequests: b.SpecialRequests(),
		WithDriver:      b.WithDriver(),
		DailyRate:       b.DailyRate().Amount(),
		TotalAmount:     b.TotalAmount().Amount(),
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
