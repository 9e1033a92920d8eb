package readstore

import (
	"context"

	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/pkg/pgconv"
	"rentdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

const bookingViewColumns = `
	b.id, b.vehicle_id, v.code, v.brand || ' ' || v.model,
	b.customer_name, b.customer_phone, b.customer_email,
	b.pickup_at, b.return_at, b.pickup_address, b.return_address,
	b.special_requests, b.with_driver, b.daily_rate, b.total_amount,
	b.status, b.created_at, b.updated_at`

const findBookingViewByIDSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.id = $1`

const findAllBookingViewsSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE ($1::text IS NULL OR b.status = $1)
ORDER BY b.created_at DESC`

const findBookingViewsByPhoneSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.customer_phone = $1
ORDER BY b.created_at DESC`

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.VehicleID, &v.VehicleCode, &v.VehicleName,
		&v.CustomerName, &v.CustomerPhone, &v.CustomerEmail,
		&v.PickupAt, &v.ReturnAt, &v.PickupAddress, &v.ReturnAddress,
		&v.SpecialRequests, &v.WithDriver, &v.DailyRate, &v.TotalAmount,
		&v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingView(s.db.QueryRow(ctx, findBookingViewByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindAll(ctx context.Context, status *string) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, findAllBookingViewsSQL, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return collectBookingViews(rows)
}

func (s *BookingReadStore) FindByPhone(ctx context.Context, phone string) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, findBookingViewsByPhoneSQL, phone)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by phone", err)
	}
	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}
