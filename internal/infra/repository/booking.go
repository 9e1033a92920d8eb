package repository

import (
	"context"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, vehicle_id, customer_name, customer_phone, customer_email,
	pickup_at, return_at, pickup_address, return_address,
	special_requests, with_driver, daily_rate, total_amount, status,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.VehicleID(),
		b.CustomerName(),
		b.CustomerPhone(),
		pgconv.TextFromPtr(b.CustomerEmail()),
		pgconv.Timestamptz(b.Period().Pickup()),
		pgconv.Timestamptz(b.Period().Return()),
		b.PickupAddress(),
		b.ReturnAddress(),
		pgconv.TextFromPtr(b.SpecialRequests()),
		b.WithDriver(),
		b.DailyRate().Amount(),
		b.TotalAmount().Amount(),
		b.Status().String(),
		pgconv.Timestamptz(b.CreatedAt()),
		pgconv.Timestamptz(b.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}
	return id, nil
}

const findBookingEntitySQL = `
SELECT id, vehicle_id, customer_name, customer_phone, customer_email,
	pickup_at, return_at, pickup_address, return_address,
	special_requests, with_driver, daily_rate, total_amount, status,
	created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, vehicleID         uuid.UUID
		customerName, customerPhone  string
		customerEmail, requests      pgtype.Text
		pickupAt, returnAt           pgtype.Timestamptz
		pickupAddress, returnAddress string
		withDriver                   bool
		dailyRate, totalAmount       int64
		status                       string
		createdAt, updatedAt         pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findBookingEntitySQL, id).Scan(
		&bookingID, &vehicleID, &customerName, &customerPhone, &customerEmail,
		&pickupAt, &returnAt, &pickupAddress, &returnAddress,
		&requests, &withDriver, &dailyRate, &totalAmount, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	period, err := booking.NewRentalPeriod(pickupAt.Time, returnAt.Time)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid period", err)
	}

	return booking.ReconstructBooking(
		bookingID, vehicleID,
		customerName, customerPhone,
		pgconv.StringPtrFromPgtype(customerEmail),
		period,
		pickupAddress, returnAddress,
		pgconv.StringPtrFromPgtype(requests),
		withDriver,
		booking.NewMoney(dailyRate), booking.NewMoney(totalAmount),
		booking.Status(status),
		createdAt.Time, updatedAt.Time,
	), nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, status.String(), pgconv.Timestamptz(updatedAt))
	if err != nil {
		return wrapWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
