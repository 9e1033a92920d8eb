package repository

import (
	"context"

	"rentdesk/internal/domain/vehicle"
	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/pkg/pgconv"
	"rentdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

// VehicleRepository serves the write side's snapshot reads and fleet
// registration.
type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(pool db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: pool}
}

const findVehicleSnapshotSQL = `
SELECT id, code, brand, model, daily_rate, status, is_active
FROM vehicles
WHERE id = $1`

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.VehicleSnapshot, error) {
	var snap commands.VehicleSnapshot
	err := r.db.QueryRow(ctx, findVehicleSnapshotSQL, id).Scan(
		&snap.ID, &snap.Code, &snap.Brand, &snap.Model,
		&snap.DailyRate, &snap.Status, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return &snap, nil
}

const insertVehicleSQL = `
INSERT INTO vehicles (
	id, code, brand, model, category, daily_rate, seats,
	transmission, fuel_type, status, is_active, plate, year
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *VehicleRepository) Insert(ctx context.Context, v *vehicle.Vehicle) error {
	_, err := r.db.Exec(ctx, insertVehicleSQL,
		v.ID(), v.Code(), v.Brand(), v.Model(), v.Category(),
		v.DailyRate(), v.Seats(),
		v.Transmission().String(), v.FuelType(),
		v.Status().String(), v.IsActive(), v.Plate(), v.Year(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert vehicle", err)
	}
	return nil
}
