package queries

import (
	"context"
)

const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

type CustomerReadStore interface {
	FindAllWithStats(ctx context.Context) ([]*CustomerView, error)
}

type DriverReadStore interface {
	FindAll(ctx context.Context) ([]*DriverView, error)
}

type FinanceReadStore interface {
	Summary(ctx context.Context) (*FinancialSummaryView, error)
}

type DashboardQueries interface {
	Customers(ctx context.Context) ([]*CustomerView, error)
	Drivers(ctx context.Context) ([]*DriverView, error)
	FinancialSummary(ctx context.Context) (*FinancialSummaryView, error)
}

type dashboardQueriesImpl struct {
	customers CustomerReadStore
	drivers   DriverReadStore
	finance   FinanceReadStore
}

func NewDashboardQueries(customers CustomerReadStore, drivers DriverReadStore, finance FinanceReadStore) DashboardQueries {
	return &dashboardQueriesImpl{
		customers: customers,
		drivers:   drivers,
		finance:   finance,
	}
}

func (q *dashboardQueriesImpl) Customers(ctx context.Context) ([]*CustomerView, error) {
	views, err := q.customers.FindAllWithStats(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.LoyaltyTier = LoyaltyTier(v.BookingCount)
	}
	return views, nil
}

func (q *dashboardQueriesImpl) Drivers(ctx context.Context) ([]*DriverView, error) {
	return q.drivers.FindAll(ctx)
}

func (q *dashboardQueriesImpl) FinancialSummary(ctx context.Context) (*FinancialSummaryView, error) {
	return q.finance.Summary(ctx)
}

// LoyaltyTier buckets customers by completed booking count: three bookings
// reach silver, six reach gold.
func LoyaltyTier(bookings int64) string {
	switch {
	case bookings >= 6:
		return TierGold
	case bookings >= 3:
		return TierSilver
	default:
		return TierBronze
	}
}
