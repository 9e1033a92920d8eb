//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rentdesk/internal/domain/vehicle"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/commands"
	commandsmock "rentdesk/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	vehicles *commandsmock.MockVehicleWriter
	commands commands.VehicleCommands
}

func (s *VehicleCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.vehicles = commandsmock.NewMockVehicleWriter(s.ctrl)
	s.commands = commands.NewVehicleCommands(s.vehicles)
}

func TestVehicleCommandsSuite(t *testing.T) {
	suite.Run(t, new(VehicleCommandsTestSuite))
}

func registerInput() commands.RegisterVehicleInput {
	return commands.RegisterVehicleInput{
		Code:         "V007",
		Brand:        "Suzuki",
		Model:        "Ertiga",
		Category:     "mpv",
		DailyRate:    325000,
		Seats:        7,
		Transmission: "manual",
		FuelType:     "petrol",
		Plate:        "B 7890 GHI",
		Year:         2024,
	}
}

func (s *VehicleCommandsTestSuite) TestRegister() {
	s.Run("success: new vehicle starts available and active", func() {
		s.SetupTest()
		var persisted *vehicle.Vehicle
		s.vehicles.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *vehicle.Vehicle) error {
				persisted = v
				return nil
			})

		entity, err := s.commands.Register(context.Background(), registerInput())

		s.Require().NoError(err)
		s.Equal(entity, persisted)
		s.Equal("V007", entity.Code())
		s.Equal(vehicle.StatusAvailable, entity.Status())
		s.True(entity.IsActive())
		s.Equal(int64(325000), entity.DailyRate())
	})

	s.Run("empty brand rejected before any write", func() {
		s.SetupTest()
		input := registerInput()
		input.Brand = "  "

		_, err := s.commands.Register(context.Background(), input)
		s.ErrorIs(err, vehicle.ErrEmptyBrand)
	})

	s.Run("unknown transmission rejected", func() {
		s.SetupTest()
		input := registerInput()
		input.Transmission = "cvt-ish"

		_, err := s.commands.Register(context.Background(), input)
		s.ErrorIs(err, vehicle.ErrInvalidGearbox)
	})

	s.Run("duplicate code maps to the taken sentinel", func() {
		s.SetupTest()
		s.vehicles.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := s.commands.Register(context.Background(), registerInput())
		s.ErrorIs(err, commands.ErrVehicleCodeTaken)
	})

	s.Run("other write failures surface as persistence errors", func() {
		s.SetupTest()
		s.vehicles.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("connection reset", nil))

		_, err := s.commands.Register(context.Background(), registerInput())
		s.True(errs.Is(err, commands.ErrVehiclePersistence))
	})
}
