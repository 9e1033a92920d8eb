package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTransition = fmt.Errorf("invalid booking status transition")

// Booking is a persisted rental reservation. The daily rate is a snapshot
// taken at creation time and never changes afterwards, even if fleet
// management reprices the vehicle.
type Booking struct {
	id              uuid.UUID
	vehicleID       uuid.UUID
	customerName    string
	customerPhone   string
	customerEmail   *string
	period          RentalPeriod
	pickupAddress   string
	returnAddress   string
	specialRequests *string
	withDriver      bool
	dailyRate       Money
	totalAmount     Money
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructBooking(
	id, vehicleID uuid.UUID,
	customerName, customerPhone string,
	customerEmail *string,
	period RentalPeriod,
	pickupAddress, returnAddress string,
	specialRequests *string,
	withDriver bool,
	dailyRate, totalAmount Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		vehicleID:       vehicleID,
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerEmail:   customerEmail,
		period:          period,
		pickupAddress:   pickupAddress,
		returnAddress:   returnAddress,
		specialRequests: specialRequests,
		withDriver:      withDriver,
		dailyRate:       dailyRate,
		totalAmount:     totalAmount,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo applies a lifecycle change, rejecting anything outside the
// pending -> confirmed -> ongoing -> completed chain (cancel allowed from
// any non-terminal state).
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !b.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.status, next)
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) IsPending() bool   { return b.status == StatusPending }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) VehicleID() uuid.UUID     { return b.vehicleID }
func (b *Booking) CustomerName() string     { return b.customerName }
func (b *Booking) CustomerPhone() string    { return b.customerPhone }
func (b *Booking) CustomerEmail() *string   { return b.customerEmail }
func (b *Booking) Period() RentalPeriod     { return b.period }
func (b *Booking) PickupAddress() string    { return b.pickupAddress }
func (b *Booking) ReturnAddress() string    { return b.returnAddress }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) WithDriver() bool         { return b.withDriver }
func (b *Booking) DailyRate() Money         { return b.dailyRate }
func (b *Booking) TotalAmount() Money       { return b.totalAmount }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
