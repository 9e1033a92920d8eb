//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/domain/customer"
	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/commands"
	"rentdesk/tests/common/builder"
	commandsmock "rentdesk/tests/mock/commands"
	uowmock "rentdesk/tests/mock/uow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockBookings      *commandsmock.MockBookingRepository
	mockProfiles      *commandsmock.MockProfileRepository
	mockNotifications *commandsmock.MockNotificationRepository
	mockVehicles      *commandsmock.MockVehicleReader
	mockUoW           *uowmock.MockUnitOfWork
	now               time.Time
	usecase           commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockProfiles = commandsmock.NewMockProfileRepository(s.mockCtrl)
	s.mockNotifications = commandsmock.NewMockNotificationRepository(s.mockCtrl)
	s.mockVehicles = commandsmock.NewMockVehicleReader(s.mockCtrl)
	s.mockUoW = uowmock.NewMockUnitOfWork(s.mockCtrl)
	s.now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	fixed := clock.NewFixedClock(s.now)
	factory := booking.NewFactory(fixed, booking.NewDailyRatePriceCalculator())
	s.usecase = commands.NewBookingCommands(
		s.mockBookings,
		s.mockProfiles,
		s.mockNotifications,
		s.mockVehicles,
		factory,
		s.mockUoW,
		fixed,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// passThroughUoW runs the transactional closure immediately, standing in
// for a committed transaction.
func (s *BookingCommandsTestSuite) passThroughUoW() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *BookingCommandsTestSuite) TestCreate() {
	s.Run("success: persists pending booking, enqueues mail, upserts profile", func() {
		s.SetupTest()
		snapshot := builder.NewVehicleSnapshotBuilder().Build()
		req := builder.NewBookingRequestBuilder().WithVehicleID(snapshot.ID).BuildDomain()

		s.mockVehicles.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.passThroughUoW()

		var persisted *booking.Booking
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
				persisted = b
				return b.ID(), nil
			})
		s.mockNotifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_created", gomock.Any(), s.now).
			Return(nil)

		var upserted *customer.Profile
		s.mockProfiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *customer.Profile) error {
				upserted = p
				return nil
			})

		result, err := s.usecase.Create(context.Background(), req)
		s.Require().NoError(err)
		s.Require().NotNil(result)

		s.Require().NotNil(persisted)
		s.Equal(booking.StatusPending, persisted.Status())
		s.Equal(int64(700000), persisted.TotalAmount().Amount())
		s.Equal(int64(350000), persisted.DailyRate().Amount())

		s.Require().NotNil(upserted)
		s.Equal(req.CustomerName, upserted.FullName())
		s.Equal(req.CustomerPhone, upserted.Phone())

		s.Equal("pending", result.Booking.Status)
		s.Equal(int64(700000), result.Booking.TotalAmount)
		s.Equal("V001", result.Booking.VehicleCode)
		s.Equal("Toyota Avanza", result.Booking.VehicleName)
	})

	s.Run("invalid request: aggregate error, nothing persisted", func() {
		s.SetupTest()
		req := builder.NewBookingRequestBuilder().WithCustomerPhone("").BuildDomain()

		_, err := s.usecase.Create(context.Background(), req)

		var verr *booking.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.True(verr.Has("customer_phone", booking.KindMissingField))
	})

	s.Run("unknown vehicle: 404-class sentinel", func() {
		s.SetupTest()
		req := builder.NewBookingRequestBuilder().BuildDomain()

		s.mockVehicles.EXPECT().FindByID(gomock.Any(), req.VehicleID).
			Return(nil, infra.WrapRepoErr("vehicle not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.usecase.Create(context.Background(), req)
		s.ErrorIs(err, commands.ErrVehicleNotFound)
	})

	s.Run("vehicle in maintenance: not available", func() {
		s.SetupTest()
		snapshot := builder.NewVehicleSnapshotBuilder().WithStatus("maintenance").Build()
		req := builder.NewBookingRequestBuilder().WithVehicleID(snapshot.ID).BuildDomain()

		s.mockVehicles.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)

		_, err := s.usecase.Create(context.Background(), req)
		s.ErrorIs(err, commands.ErrVehicleNotAvailable)
	})

	s.Run("inactive vehicle: not available even when status says available", func() {
		s.SetupTest()
		snapshot := builder.NewVehicleSnapshotBuilder().AsInactive().Build()
		req := builder.NewBookingRequestBuilder().WithVehicleID(snapshot.ID).BuildDomain()

		s.mockVehicles.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)

		_, err := s.usecase.Create(context.Background(), req)
		s.ErrorIs(err, commands.ErrVehicleNotAvailable)
	})

	s.Run("overlapping period: conflict sentinel, no profile upsert", func() {
		s.SetupTest()
		snapshot := builder.NewVehicleSnapshotBuilder().Build()
		req := builder.NewBookingRequestBuilder().WithVehicleID(snapshot.ID).BuildDomain()

		s.mockVehicles.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.passThroughUoW()
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("booking overlaps", errs.New("exclusion violation"), infra.KindConflict))

		_, err := s.usecase.Create(context.Background(), req)
		s.ErrorIs(err, commands.ErrBookingConflict)
	})

	s.Run("insert failure: persistence sentinel, no profile upsert", func() {
		s.SetupTest()
		snapshot := builder.NewVehicleSnapshotBuilder().Build()
		req := builder.NewBookingRequestBuilder().WithVehicleID(snapshot.ID).BuildDomain()

		s.mockVehicles.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.passThroughUoW()
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", errs.New("db down")))

		_, err := s.usecase.Create(context.Background(), req)
		s.True(errs.Is(err, commands.ErrBookingPersistence))
	})

	s.Run("profile upsert failure never fails the booking", func() {
		s.SetupTest()
		snapshot := builder.NewVehicleSnapshotBuilder().Build()
		req := builder.NewBookingRequestBuilder().WithVehicleID(snapshot.ID).BuildDomain()

		s.mockVehicles.EXPECT().FindByID(gomock.Any(), snapshot.ID).Return(snapshot, nil)
		s.passThroughUoW()
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.mockNotifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_created", gomock.Any(), s.now).
			Return(nil)
		s.mockProfiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("upsert failed", errs.New("db down")))

		result, err := s.usecase.Create(context.Background(), req)
		s.Require().NoError(err)
		s.Equal("pending", result.Booking.Status)
	})
}
