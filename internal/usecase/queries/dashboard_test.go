//go:build unit

package queries_test

import (
	"context"
	"testing"

	"rentdesk/internal/usecase/queries"
	queriesmock "rentdesk/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoyaltyTier(t *testing.T) {
	cases := []struct {
		bookings int64
		want     string
	}{
		{bookings: 0, want: queries.TierBronze},
		{bookings: 2, want: queries.TierBronze},
		{bookings: 3, want: queries.TierSilver},
		{bookings: 5, want: queries.TierSilver},
		{bookings: 6, want: queries.TierGold},
		{bookings: 20, want: queries.TierGold},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, queries.LoyaltyTier(tc.bookings))
	}
}

func TestDashboardQueries_Customers(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := queriesmock.NewMockCustomerReadStore(ctrl)
	q := queries.NewDashboardQueries(customers, nil, nil)

	customers.EXPECT().FindAllWithStats(gomock.Any()).Return([]*queries.CustomerView{
		{FullName: "Budi Santoso", Phone: "+628123456789", BookingCount: 7},
		{FullName: "Siti Rahma", Phone: "+628555000111", BookingCount: 3},
		{FullName: "Andi Wijaya", Phone: "+628777000222", BookingCount: 1},
	}, nil)

	views, err := q.Customers(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, queries.TierGold, views[0].LoyaltyTier)
	assert.Equal(t, queries.TierSilver, views[1].LoyaltyTier)
	assert.Equal(t, queries.TierBronze, views[2].LoyaltyTier)
}
