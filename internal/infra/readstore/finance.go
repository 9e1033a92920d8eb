package readstore

import (
	"context"

	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/usecase/queries"
)

type FinanceReadStore struct {
	db db.DBTX
}

func NewFinanceReadStore(pool db.DBTX) *FinanceReadStore {
	return &FinanceReadStore{db: pool}
}

const financeTotalsSQL = `
SELECT
	COALESCE(sum(total_amount) FILTER (WHERE status <> 'cancelled'), 0),
	count(*) FILTER (WHERE status <> 'cancelled'),
	count(*) FILTER (WHERE status IN ('confirmed', 'ongoing'))
FROM bookings`

const financeMonthlySQL = `
SELECT
	to_char(date_trunc('month', created_at), 'YYYY-MM'),
	COALESCE(sum(total_amount), 0),
	count(*)
FROM bookings
WHERE status <> 'cancelled'
GROUP BY date_trunc('month', created_at)
ORDER BY date_trunc('month', created_at) DESC
LIMIT 12`

func (s *FinanceReadStore) Summary(ctx context.Context) (*queries.FinancialSummaryView, error) {
	var view queries.FinancialSummaryView
	err := s.db.QueryRow(ctx, financeTotalsSQL).Scan(
		&view.TotalRevenue, &view.TotalBookings, &view.ActiveBookings,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load revenue totals", err)
	}

	rows, err := s.db.Query(ctx, financeMonthlySQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load monthly revenue", err)
	}
	defer rows.Close()

	view.Monthly = make([]queries.MonthlyRevenue, 0)
	for rows.Next() {
		var m queries.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Bookings); err != nil {
			return nil, infra.WrapRepoErr("failed to scan monthly revenue row", err)
		}
		view.Monthly = append(view.Monthly, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate monthly revenue rows", err)
	}
	return &view, nil
}
