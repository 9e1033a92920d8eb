//go:build unit

package builder

import (
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/usecase/commands"
	"rentdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRequestBuilder struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	PickupAt        time.Time
	ReturnAt        time.Time
	PickupAddress   string
	ReturnAddress   *string
	VehicleID       uuid.UUID
	SpecialRequests *string
	WithDriver      bool
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	email := "budi@example.com"
	pickup := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	return &BookingRequestBuilder{
		CustomerName:  "Budi Santoso",
		CustomerPhone: "+628123456789",
		CustomerEmail: &email,
		PickupAt:      pickup,
		ReturnAt:      pickup.Add(48 * time.Hour),
		PickupAddress: "Jl. Sudirman No. 10, Jakarta",
		VehicleID:     uuid.New(),
	}
}

func (b *BookingRequestBuilder) BuildDomain() booking.Request {
	return booking.Request{
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		PickupAt:        b.PickupAt,
		ReturnAt:        b.ReturnAt,
		PickupAddress:   b.PickupAddress,
		ReturnAddress:   b.ReturnAddress,
		VehicleID:       b.VehicleID,
		SpecialRequests: b.SpecialRequests,
		WithDriver:      b.WithDriver,
	}
}

func (b *BookingRequestBuilder) WithCustomerName(name string) *BookingRequestBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingRequestBuilder) WithCustomerPhone(phone string) *BookingRequestBuilder {
	b.CustomerPhone = phone
	return b
}

func (b *BookingRequestBuilder) WithoutEmail() *BookingRequestBuilder {
	b.CustomerEmail = nil
	return b
}

func (b *BookingRequestBuilder) WithPickupAt(t time.Time) *BookingRequestBuilder {
	b.PickupAt = t
	return b
}

func (b *BookingRequestBuilder) WithReturnAt(t time.Time) *BookingRequestBuilder {
	b.ReturnAt = t
	return b
}

func (b *BookingRequestBuilder) WithVehicleID(id uuid.UUID) *BookingRequestBuilder {
	b.VehicleID = id
	return b
}

func (b *BookingRequestBuilder) WithPickupAddress(addr string) *BookingRequestBuilder {
	b.PickupAddress = addr
	return b
}

func (b *BookingRequestBuilder) WithReturnAddress(addr string) *BookingRequestBuilder {
	b.ReturnAddress = &addr
	return b
}

func (b *BookingRequestBuilder) WithDriverIncluded() *BookingRequestBuilder {
	b.WithDriver = true
	return b
}

type VehicleSnapshotBuilder struct {
	ID        uuid.UUID
	Code      string
	Brand     string
	Model     string
	DailyRate int64
	Status    string
	IsActive  bool
}

func NewVehicleSnapshotBuilder() *VehicleSnapshotBuilder {
	return &VehicleSnapshotBuilder{
		ID:        uuid.New(),
		Code:      "V001",
		Brand:     "Toyota",
		Model:     "Avanza",
		DailyRate: 350000,
		Status:    "available",
		IsActive:  true,
	}
}

func (v *VehicleSnapshotBuilder) Build() *commands.VehicleSnapshot {
	return &commands.VehicleSnapshot{
		ID:        v.ID,
		Code:      v.Code,
		Brand:     v.Brand,
		Model:     v.Model,
		DailyRate: v.DailyRate,
		Status:    v.Status,
		IsActive:  v.IsActive,
	}
}

func (v *VehicleSnapshotBuilder) WithID(id uuid.UUID) *VehicleSnapshotBuilder {
	v.ID = id
	return v
}

func (v *VehicleSnapshotBuilder) WithDailyRate(rate int64) *VehicleSnapshotBuilder {
	v.DailyRate = rate
	return v
}

func (v *VehicleSnapshotBuilder) WithStatus(status string) *VehicleSnapshotBuilder {
	v.Status = status
	return v
}

func (v *VehicleSnapshotBuilder) AsInactive() *VehicleSnapshotBuilder {
	v.IsActive = false
	return v
}

func (b *BookingRequestBuilder) BuildView(vehicle *commands.VehicleSnapshot, total int64) *queries.BookingView {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:            uuid.New(),
		VehicleID:     vehicle.ID,
		VehicleCode:   vehicle.Code,
		VehicleName:   vehicle.Brand + " " + vehicle.Model,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		PickupAt:      b.PickupAt,
		ReturnAt:      b.ReturnAt,
		PickupAddress: b.PickupAddress,
		ReturnAddress: b.PickupAddress,
		WithDriver:    b.WithDriver,
		DailyRate:     vehicle.DailyRate,
		TotalAmount:   total,
		Status:        "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
