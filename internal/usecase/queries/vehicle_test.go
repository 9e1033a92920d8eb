//go:build unit

package queries_test

import (
	"context"
	"testing"

	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/queries"
	queriesmock "rentdesk/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVehicleQueries_ListBookable(t *testing.T) {
	t.Run("passes through the bookable set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVehicleReadStore(ctrl)
		q := queries.NewVehicleQueries(store)

		views := []*queries.VehicleView{
			{Code: "V001", Status: "available", IsActive: true},
			{Code: "V003", Status: "available", IsActive: true},
		}
		store.EXPECT().FindBookable(gomock.Any()).Return(views, nil)

		got, err := q.ListBookable(context.Background())
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("store failure is marked as a catalog fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVehicleReadStore(ctrl)
		q := queries.NewVehicleQueries(store)

		store.EXPECT().FindBookable(gomock.Any()).
			Return(nil, infra.WrapRepoErr("list failed", errs.New("db down")))

		_, err := q.ListBookable(context.Background())
		assert.True(t, errs.Is(err, queries.ErrCatalogFetch))
	})
}

func TestVehicleQueries_ListFleet(t *testing.T) {
	t.Run("returns vehicles and counts together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVehicleReadStore(ctrl)
		q := queries.NewVehicleQueries(store)

		views := []*queries.VehicleView{{Code: "V001"}}
		counts := []*queries.FleetStatusCount{{Status: "available", Count: 1}}
		store.EXPECT().FindAll(gomock.Any()).Return(views, nil)
		store.EXPECT().CountByStatus(gomock.Any()).Return(counts, nil)

		gotViews, gotCounts, err := q.ListFleet(context.Background())
		require.NoError(t, err)
		assert.Equal(t, views, gotViews)
		assert.Equal(t, counts, gotCounts)
	})

	t.Run("count failure is also a catalog fetch error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVehicleReadStore(ctrl)
		q := queries.NewVehicleQueries(store)

		store.EXPECT().FindAll(gomock.Any()).Return([]*queries.VehicleView{}, nil)
		store.EXPECT().CountByStatus(gomock.Any()).
			Return(nil, infra.WrapRepoErr("count failed", errs.New("db down")))

		_, _, err := q.ListFleet(context.Background())
		assert.True(t, errs.Is(err, queries.ErrCatalogFetch))
	})
}
