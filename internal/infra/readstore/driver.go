package readstore

import (
	"context"

	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/usecase/queries"
)

type DriverReadStore struct {
	db db.DBTX
}

func NewDriverReadStore(pool db.DBTX) *DriverReadStore {
	return &DriverReadStore{db: pool}
}

const findAllDriversSQL = `
SELECT id, full_name, phone, license_no, status, trip_count, rating
FROM drivers
ORDER BY full_name`

func (s *DriverReadStore) FindAll(ctx context.Context) ([]*queries.DriverView, error) {
	rows, err := s.db.Query(ctx, findAllDriversSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list drivers", err)
	}
	defer rows.Close()

	views := make([]*queries.DriverView, 0)
	for rows.Next() {
		var v queries.DriverView
		if err := rows.Scan(
			&v.ID, &v.FullName, &v.Phone, &v.LicenseNo, &v.Status, &v.TripCount, &v.Rating,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan driver row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate driver rows", err)
	}
	return views, nil
}
