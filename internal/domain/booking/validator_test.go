//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	t.Run("complete request passes", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().BuildDomain()
		assert.Nil(t, booking.ValidateRequest(req))
	})

	t.Run("every missing field is reported at once", func(t *testing.T) {
		verr := booking.ValidateRequest(booking.Request{})
		require.NotNil(t, verr)

		assert.Len(t, verr.Violations, 6)
		assert.True(t, verr.Has("customer_name", booking.KindMissingField))
		assert.True(t, verr.Has("customer_phone", booking.KindMissingField))
		assert.True(t, verr.Has("pickup_datetime", booking.KindMissingField))
		assert.True(t, verr.Has("return_datetime", booking.KindMissingField))
		assert.True(t, verr.Has("vehicle_id", booking.KindMissingField))
		assert.True(t, verr.Has("pickup_address", booking.KindMissingField))
	})

	t.Run("whitespace-only fields count as missing", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().
			WithCustomerName("   ").
			WithCustomerPhone("\t").
			BuildDomain()

		verr := booking.ValidateRequest(req)
		require.NotNil(t, verr)
		assert.True(t, verr.Has("customer_name", booking.KindMissingField))
		assert.True(t, verr.Has("customer_phone", booking.KindMissingField))
		assert.False(t, verr.Has("pickup_address", booking.KindMissingField))
	})

	t.Run("return before pickup is an invalid date range", func(t *testing.T) {
		pickup := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)
		req := builder.NewBookingRequestBuilder().
			WithPickupAt(pickup).
			WithReturnAt(pickup.Add(-24 * time.Hour)).
			BuildDomain()

		verr := booking.ValidateRequest(req)
		require.NotNil(t, verr)
		assert.True(t, verr.Has("return_datetime", booking.KindInvalidDateRange))
		assert.Len(t, verr.Violations, 1)
	})

	t.Run("equal pickup and return is an invalid date range", func(t *testing.T) {
		pickup := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)
		req := builder.NewBookingRequestBuilder().
			WithPickupAt(pickup).
			WithReturnAt(pickup).
			BuildDomain()

		verr := booking.ValidateRequest(req)
		require.NotNil(t, verr)
		assert.True(t, verr.Has("return_datetime", booking.KindInvalidDateRange))
	})

	t.Run("date order is not checked while a datetime is missing", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().
			WithPickupAt(time.Time{}).
			BuildDomain()

		verr := booking.ValidateRequest(req)
		require.NotNil(t, verr)
		assert.True(t, verr.Has("pickup_datetime", booking.KindMissingField))
		assert.False(t, verr.Has("return_datetime", booking.KindInvalidDateRange))
	})

	t.Run("missing violations and date range report together", func(t *testing.T) {
		pickup := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)
		req := builder.NewBookingRequestBuilder().
			WithCustomerPhone("").
			WithVehicleID(uuid.Nil).
			WithPickupAt(pickup).
			WithReturnAt(pickup.Add(-time.Hour)).
			BuildDomain()

		verr := booking.ValidateRequest(req)
		require.NotNil(t, verr)
		assert.Len(t, verr.Violations, 3)
		assert.True(t, verr.Has("customer_phone", booking.KindMissingField))
		assert.True(t, verr.Has("vehicle_id", booking.KindMissingField))
		assert.True(t, verr.Has("return_datetime", booking.KindInvalidDateRange))
	})
}

func TestEffectiveReturnAddress(t *testing.T) {
	t.Run("defaults to pickup address", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().BuildDomain()
		assert.Equal(t, req.PickupAddress, req.EffectiveReturnAddress())
	})

	t.Run("uses explicit return address when set", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().
			WithReturnAddress("Bandara Soekarno-Hatta, Terminal 3").
			BuildDomain()
		assert.Equal(t, "Bandara Soekarno-Hatta, Terminal 3", req.EffectiveReturnAddress())
	})

	t.Run("blank return address falls back to pickup", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().
			WithReturnAddress("   ").
			BuildDomain()
		assert.Equal(t, req.PickupAddress, req.EffectiveReturnAddress())
	})
}
