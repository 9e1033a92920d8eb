//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentdesk/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalDays(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		pickup time.Time
		ret    time.Time
		want   int
	}{
		{name: "same instant counts as one day", pickup: base, ret: base, want: 1},
		{name: "same-day return counts as one day", pickup: base, ret: base.Add(6 * time.Hour), want: 1},
		{name: "exactly 24 hours is one day", pickup: base, ret: base.Add(24 * time.Hour), want: 1},
		{name: "a minute past 24 hours rounds up to two", pickup: base, ret: base.Add(24*time.Hour + time.Minute), want: 2},
		{name: "exactly 48 hours is two days", pickup: base, ret: base.Add(48 * time.Hour), want: 2},
		{name: "partial third day rounds up", pickup: base, ret: base.Add(50 * time.Hour), want: 3},
		{name: "reversed operands take the absolute difference", pickup: base.Add(30 * time.Hour), ret: base, want: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.RentalDays(tc.pickup, tc.ret))
		})
	}
}

func TestDailyRatePriceCalculator_Total(t *testing.T) {
	calc := booking.NewDailyRatePriceCalculator()
	pickup := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	t.Run("two full days at 350000", func(t *testing.T) {
		period, err := booking.NewRentalPeriod(pickup, pickup.Add(48*time.Hour))
		require.NoError(t, err)

		total := calc.Total(booking.NewMoney(350000), period)
		assert.Equal(t, int64(700000), total.Amount())
	})

	t.Run("same-day rental bills one full day", func(t *testing.T) {
		period, err := booking.NewRentalPeriod(pickup, pickup.Add(3*time.Hour))
		require.NoError(t, err)

		total := calc.Total(booking.NewMoney(300000), period)
		assert.Equal(t, int64(300000), total.Amount())
	})
}

func TestDailyRatePriceCalculator_Estimate(t *testing.T) {
	calc := booking.NewDailyRatePriceCalculator()
	rate := int64(350000)
	zeroRate := int64(0)
	pickup := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ret := pickup.Add(48 * time.Hour)

	t.Run("complete inputs produce the estimate", func(t *testing.T) {
		got := calc.Estimate(&rate, &pickup, &ret)
		assert.Equal(t, int64(700000), got.Amount())
	})

	t.Run("missing rate yields zero", func(t *testing.T) {
		got := calc.Estimate(nil, &pickup, &ret)
		assert.True(t, got.IsZero())
	})

	t.Run("zero rate yields zero", func(t *testing.T) {
		got := calc.Estimate(&zeroRate, &pickup, &ret)
		assert.True(t, got.IsZero())
	})

	t.Run("missing pickup yields zero", func(t *testing.T) {
		got := calc.Estimate(&rate, nil, &ret)
		assert.True(t, got.IsZero())
	})

	t.Run("missing return yields zero", func(t *testing.T) {
		got := calc.Estimate(&rate, &pickup, nil)
		assert.True(t, got.IsZero())
	})
}
