package booking

import (
	"strings"

	"rentdesk/internal/pkg/clock"

	"github.com/google/uuid"
)

// VehicleSpec is the slice of the vehicle the factory needs: identity and
// the rate to snapshot. Availability is the catalog's concern and is
// checked before the factory runs.
type VehicleSpec struct {
	ID        uuid.UUID
	Code      string
	DailyRate int64
}

type Factory struct {
	clock      clock.Clock
	calculator PriceCalculator
}

func NewFactory(clk clock.Clock, calculator PriceCalculator) *Factory {
	return &Factory{
		clock:      clk,
		calculator: calculator,
	}
}

// CreateBooking turns a validated Request into a pending Booking with the
// vehicle's rate snapshotted and the total computed. A *ValidationError is
// returned when the request fails the aggregate check.
func (f *Factory) CreateBooking(spec VehicleSpec, req Request) (*Booking, error) {
	if verr := ValidateRequest(req); verr != nil {
		return nil, verr
	}

	period, err := NewRentalPeriod(req.PickupAt, req.ReturnAt)
	if err != nil {
		return nil, err
	}

	rate, err := NewMoneyChecked(spec.DailyRate)
	if err != nil {
		return nil, err
	}

	total := f.calculator.Total(rate, period)
	now := f.clock.Now()

	var email *string
	if req.CustomerEmail != nil && strings.TrimSpace(*req.CustomerEmail) != "" {
		trimmed := strings.TrimSpace(*req.CustomerEmail)
		email = &trimmed
	}
	var requests *string
	if req.SpecialRequests != nil && strings.TrimSpace(*req.SpecialRequests) != "" {
		trimmed := strings.TrimSpace(*req.SpecialRequests)
		requests = &trimmed
	}

	return &Booking{
		id:              uuid.New(),
		vehicleID:       spec.ID,
		customerName:    strings.TrimSpace(req.CustomerName),
		customerPhone:   strings.TrimSpace(req.CustomerPhone),
		customerEmail:   email,
		period:          period,
		pickupAddress:   strings.TrimSpace(req.PickupAddress),
		returnAddress:   req.EffectiveReturnAddress(),
		specialRequests: requests,
		withDriver:      req.WithDriver,
		dailyRate:       rate,
		totalAmount:     total,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}
