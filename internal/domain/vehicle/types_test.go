//go:build unit

package vehicle_test

import (
	"testing"

	"rentdesk/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	t.Run("accepts every fleet state", func(t *testing.T) {
		for _, s := range []vehicle.Status{
			vehicle.StatusAvailable,
			vehicle.StatusBooked,
			vehicle.StatusMaintenance,
			vehicle.StatusUnavailable,
		} {
			assert.True(t, s.IsValid(), s.String())
		}
	})

	t.Run("rejects unknown states", func(t *testing.T) {
		assert.False(t, vehicle.Status("parked").IsValid())
		assert.False(t, vehicle.Status("").IsValid())
	})
}

func TestVehicle_Bookable(t *testing.T) {
	build := func(t *testing.T, status vehicle.Status) *vehicle.Vehicle {
		v, err := vehicle.NewVehicle("V010", "Toyota", "Avanza", "mpv",
			350000, 7, vehicle.TransmissionManual, "petrol", status, "B 1010 JK", 2023)
		require.NoError(t, err)
		return v
	}

	t.Run("only available vehicles are offered", func(t *testing.T) {
		assert.True(t, build(t, vehicle.StatusAvailable).Bookable())
		assert.False(t, build(t, vehicle.StatusBooked).Bookable())
		assert.False(t, build(t, vehicle.StatusMaintenance).Bookable())
		assert.False(t, build(t, vehicle.StatusUnavailable).Bookable())
	})
}
