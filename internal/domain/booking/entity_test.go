//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/pkg/clock"
	"rentdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(now time.Time) *booking.Factory {
	return booking.NewFactory(clock.NewFixedClock(now), booking.NewDailyRatePriceCalculator())
}

func TestFactoryCreateBooking(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	vehicleID := uuid.New()
	spec := booking.VehicleSpec{ID: vehicleID, Code: "V001", DailyRate: 350000}

	t.Run("creates a pending booking with the priced total", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().WithVehicleID(vehicleID).BuildDomain()

		b, err := newFactory(now).CreateBooking(spec, req)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, vehicleID, b.VehicleID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, int64(350000), b.DailyRate().Amount())
		assert.Equal(t, int64(700000), b.TotalAmount().Amount())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, now, b.UpdatedAt())
		assert.Equal(t, req.PickupAddress, b.ReturnAddress())
	})

	t.Run("trims text fields and drops blank optionals", func(t *testing.T) {
		email := "  budi@example.com  "
		blank := "   "
		b, err := newFactory(now).CreateBooking(spec, booking.Request{
			CustomerName:    "  Budi Santoso ",
			CustomerPhone:   " +628123456789 ",
			CustomerEmail:   &email,
			PickupAt:        now.Add(24 * time.Hour),
			ReturnAt:        now.Add(72 * time.Hour),
			PickupAddress:   " Jl. Sudirman No. 10 ",
			SpecialRequests: &blank,
			VehicleID:       vehicleID,
		})
		require.NoError(t, err)

		assert.Equal(t, "Budi Santoso", b.CustomerName())
		assert.Equal(t, "+628123456789", b.CustomerPhone())
		require.NotNil(t, b.CustomerEmail())
		assert.Equal(t, "budi@example.com", *b.CustomerEmail())
		assert.Equal(t, "Jl. Sudirman No. 10", b.PickupAddress())
		assert.Nil(t, b.SpecialRequests())
	})

	t.Run("invalid request returns the aggregate validation error", func(t *testing.T) {
		_, err := newFactory(now).CreateBooking(spec, booking.Request{})

		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.NotEmpty(t, verr.Violations)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().WithVehicleID(vehicleID).BuildDomain()
		badSpec := booking.VehicleSpec{ID: vehicleID, Code: "V002", DailyRate: -1}

		_, err := newFactory(now).CreateBooking(badSpec, req)
		assert.ErrorIs(t, err, booking.ErrNegativeAmount)
	})
}

func TestBookingTransitions(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	spec := booking.VehicleSpec{ID: uuid.New(), Code: "V001", DailyRate: 350000}

	newPending := func(t *testing.T) *booking.Booking {
		t.Helper()
		req := builder.NewBookingRequestBuilder().WithVehicleID(spec.ID).BuildDomain()
		b, err := newFactory(now).CreateBooking(spec, req)
		require.NoError(t, err)
		return b
	}

	t.Run("walks the full lifecycle", func(t *testing.T) {
		b := newPending(t)
		later := now.Add(time.Hour)

		require.NoError(t, b.TransitionTo(booking.StatusConfirmed, later))
		require.NoError(t, b.TransitionTo(booking.StatusOngoing, later))
		require.NoError(t, b.TransitionTo(booking.StatusCompleted, later))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("cancel is allowed from any non-terminal state", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed, now))
		require.NoError(t, b.TransitionTo(booking.StatusCancelled, now))
		assert.True(t, b.IsCancelled())
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		b := newPending(t)
		err := b.TransitionTo(booking.StatusCompleted, now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.True(t, b.IsPending())
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.TransitionTo(booking.StatusCancelled, now))

		err := b.TransitionTo(booking.StatusConfirmed, now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		b := newPending(t)
		err := b.TransitionTo(booking.Status("parked"), now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}
