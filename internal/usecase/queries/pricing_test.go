//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/queries"
	queriesmock "rentdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPricingQueries_Quote(t *testing.T) {
	pickup := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ret := pickup.Add(48 * time.Hour)

	newQuery := func(t *testing.T) (queries.PricingQueries, *queriesmock.MockVehicleRateStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVehicleRateStore(ctrl)
		return queries.NewPricingQueries(store, booking.NewDailyRatePriceCalculator()), store
	}

	t.Run("complete inputs price two days", func(t *testing.T) {
		q, store := newQuery(t)
		vehicleID := uuid.New()
		store.EXPECT().FindDailyRate(gomock.Any(), vehicleID).Return(int64(350000), nil)

		quote, err := q.Quote(context.Background(), &vehicleID, &pickup, &ret)
		require.NoError(t, err)
		assert.True(t, quote.Complete)
		assert.Equal(t, 2, quote.Days)
		assert.Equal(t, int64(700000), quote.Total)
	})

	t.Run("missing vehicle id yields the zero quote without a lookup", func(t *testing.T) {
		q, _ := newQuery(t)

		quote, err := q.Quote(context.Background(), nil, &pickup, &ret)
		require.NoError(t, err)
		assert.False(t, quote.Complete)
		assert.Zero(t, quote.Total)
	})

	t.Run("missing dates yield the zero quote", func(t *testing.T) {
		q, _ := newQuery(t)
		vehicleID := uuid.New()

		quote, err := q.Quote(context.Background(), &vehicleID, nil, &ret)
		require.NoError(t, err)
		assert.False(t, quote.Complete)
		assert.Zero(t, quote.Total)
	})

	t.Run("zero daily rate degrades to the zero quote", func(t *testing.T) {
		q, store := newQuery(t)
		vehicleID := uuid.New()
		store.EXPECT().FindDailyRate(gomock.Any(), vehicleID).Return(int64(0), nil)

		quote, err := q.Quote(context.Background(), &vehicleID, &pickup, &ret)
		require.NoError(t, err)
		assert.False(t, quote.Complete)
		assert.Zero(t, quote.Total)
	})

	t.Run("unknown vehicle degrades to the zero quote", func(t *testing.T) {
		q, store := newQuery(t)
		vehicleID := uuid.New()
		store.EXPECT().FindDailyRate(gomock.Any(), vehicleID).
			Return(int64(0), infra.WrapRepoErr("vehicle not found", errs.New("no rows"), infra.KindNotFound))

		quote, err := q.Quote(context.Background(), &vehicleID, &pickup, &ret)
		require.NoError(t, err)
		assert.False(t, quote.Complete)
	})

	t.Run("store failure surfaces as an error", func(t *testing.T) {
		q, store := newQuery(t)
		vehicleID := uuid.New()
		store.EXPECT().FindDailyRate(gomock.Any(), vehicleID).
			Return(int64(0), infra.WrapRepoErr("rate lookup failed", errs.New("db down")))

		_, err := q.Quote(context.Background(), &vehicleID, &pickup, &ret)
		assert.Error(t, err)
	})
}
