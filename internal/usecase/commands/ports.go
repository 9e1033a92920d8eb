package commands

import (
	"context"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/domain/customer"
	"rentdesk/internal/domain/vehicle"
	"rentdesk/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side query types.

type VehicleSnapshot struct {
	ID        uuid.UUID
	Code      string
	Brand     string
	Model     string
	DailyRate int64
	Status    string
	IsActive  bool
}

// Bookable reports whether the vehicle could be offered at selection time.
func (v VehicleSnapshot) Bookable() bool {
	return v.IsActive && vehicle.Status(v.Status) == vehicle.StatusAvailable
}

type VehicleReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
}

type VehicleWriter interface {
	Insert(ctx context.Context, v *vehicle.Vehicle) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, updatedAt time.Time) error
}

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *customer.Profile) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
