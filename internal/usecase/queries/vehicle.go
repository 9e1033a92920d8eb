package queries

import (
	"context"

	"rentdesk/internal/pkg/errs"
)

// ErrCatalogFetch means the vehicle catalog is temporarily unknown, not
// empty: callers must degrade to an empty list and surface a warning
// instead of blocking the booking form.
var ErrCatalogFetch = errs.New("vehicle catalog fetch failed")

type VehicleReadStore interface {
	FindBookable(ctx context.Context) ([]*VehicleView, error)
	FindAll(ctx context.Context) ([]*VehicleView, error)
	CountByStatus(ctx context.Context) ([]*FleetStatusCount, error)
}

type VehicleQueries interface {
	// ListBookable returns vehicles with status available and the active
	// flag set, i.e. the set the booking form may offer.
	ListBookable(ctx context.Context) ([]*VehicleView, error)
	// ListFleet returns every vehicle plus per-status counts, for the
	// dashboard fleet tab.
	ListFleet(ctx context.Context) ([]*VehicleView, []*FleetStatusCount, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) ListBookable(ctx context.Context) ([]*VehicleView, error) {
	views, err := q.store.FindBookable(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFetch)
	}
	return views, nil
}

func (q *vehicleQueriesImpl) ListFleet(ctx context.Context) ([]*VehicleView, []*FleetStatusCount, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrCatalogFetch)
	}
	counts, err := q.store.CountByStatus(ctx)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrCatalogFetch)
	}
	return views, counts, nil
}
