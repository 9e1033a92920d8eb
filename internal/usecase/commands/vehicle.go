package commands

import (
	"context"

	"rentdesk/internal/domain/vehicle"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/errs"
)

var (
	ErrVehicleCodeTaken   = errs.New("vehicle code already in use")
	ErrVehiclePersistence = errs.New("vehicle persistence failed")
)

type RegisterVehicleInput struct {
	Code         string
	Brand        string
	Model        string
	Category     string
	DailyRate    int64
	Seats        int
	Transmission string
	FuelType     string
	Plate        string
	Year         int
}

type VehicleCommands interface {
	Register(ctx context.Context, input RegisterVehicleInput) (*vehicle.Vehicle, error)
}

type vehicleCommandsImpl struct {
	vehicles VehicleWriter
}

func NewVehicleCommands(vehicles VehicleWriter) VehicleCommands {
	return &vehicleCommandsImpl{vehicles: vehicles}
}

// Register adds a vehicle to the fleet. New vehicles start available and
// active so they show up on the booking form immediately.
func (c *vehicleCommandsImpl) Register(ctx context.Context, input RegisterVehicleInput) (*vehicle.Vehicle, error) {
	entity, err := vehicle.NewVehicle(
		input.Code,
		input.Brand,
		input.Model,
		input.Category,
		input.DailyRate,
		input.Seats,
		vehicle.Transmission(input.Transmission),
		input.FuelType,
		vehicle.StatusAvailable,
		input.Plate,
		input.Year,
	)
	if err != nil {
		return nil, err
	}

	if err := c.vehicles.Insert(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrVehicleCodeTaken
		}
		return nil, errs.Mark(err, ErrVehiclePersistence)
	}
	return entity, nil
}
