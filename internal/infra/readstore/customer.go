package readstore

import (
	"context"

	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/usecase/queries"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(pool db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: pool}
}

// Cancelled bookings do not count toward loyalty or spend.
const findCustomersWithStatsSQL = `
SELECT
	p.full_name,
	p.phone,
	p.role,
	count(b.id),
	COALESCE(sum(b.total_amount), 0),
	max(b.created_at)
FROM profiles p
LEFT JOIN bookings b
	ON b.customer_phone = p.phone AND b.status <> 'cancelled'
GROUP BY p.full_name, p.phone, p.role
ORDER BY count(b.id) DESC, p.full_name`

func (s *CustomerReadStore) FindAllWithStats(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := s.db.Query(ctx, findCustomersWithStatsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	views := make([]*queries.CustomerView, 0)
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(
			&v.FullName, &v.Phone, &v.Role,
			&v.BookingCount, &v.TotalSpent, &v.LastBookingAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return views, nil
}
