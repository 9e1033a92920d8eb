package readstore

import (
	"context"

	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/pkg/pgconv"
	"rentdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(pool db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: pool}
}

const vehicleColumns = `
	id, code, brand, model, category, daily_rate, seats,
	transmission, fuel_type, status, is_active, plate, year`

const findBookableVehiclesSQL = `
SELECT` + vehicleColumns + `
FROM vehicles
WHERE status = 'available' AND is_active = true
ORDER BY code`

const findAllVehiclesSQL = `
SELECT` + vehicleColumns + `
FROM vehicles
ORDER BY code`

func (s *VehicleReadStore) FindBookable(ctx context.Context) ([]*queries.VehicleView, error) {
	return s.list(ctx, findBookableVehiclesSQL)
}

func (s *VehicleReadStore) FindAll(ctx context.Context) ([]*queries.VehicleView, error) {
	return s.list(ctx, findAllVehiclesSQL)
}

func (s *VehicleReadStore) list(ctx context.Context, query string) ([]*queries.VehicleView, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	views := make([]*queries.VehicleView, 0)
	for rows.Next() {
		var v queries.VehicleView
		if err := rows.Scan(
			&v.ID, &v.Code, &v.Brand, &v.Model, &v.Category, &v.DailyRate, &v.Seats,
			&v.Transmission, &v.FuelType, &v.Status, &v.IsActive, &v.Plate, &v.Year,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}
	return views, nil
}

const findDailyRateSQL = `
SELECT daily_rate FROM vehicles WHERE id = $1`

func (s *VehicleReadStore) FindDailyRate(ctx context.Context, id uuid.UUID) (int64, error) {
	var rate int64
	if err := s.db.QueryRow(ctx, findDailyRateSQL, id).Scan(&rate); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to load daily rate", err)
	}
	return rate, nil
}

const countVehiclesByStatusSQL = `
SELECT status, count(*)
FROM vehicles
WHERE is_active = true
GROUP BY status
ORDER BY status`

func (s *VehicleReadStore) CountByStatus(ctx context.Context) ([]*queries.FleetStatusCount, error) {
	rows, err := s.db.Query(ctx, countVehiclesByStatusSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count vehicles by status", err)
	}
	defer rows.Close()

	counts := make([]*queries.FleetStatusCount, 0)
	for rows.Next() {
		var c queries.FleetStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count row", err)
		}
		counts = append(counts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status count rows", err)
	}
	return counts, nil
}
