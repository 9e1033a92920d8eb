//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/infra"
	"rentdesk/internal/infra/db"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/commands"
	commandsmock "rentdesk/tests/mock/commands"
	uowmock "rentdesk/tests/mock/uow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingStatusTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockBookings      *commandsmock.MockBookingRepository
	mockNotifications *commandsmock.MockNotificationRepository
	mockUoW           *uowmock.MockUnitOfWork
	now               time.Time
	usecase           commands.BookingStatusCommands
}

func (s *BookingStatusTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockNotifications = commandsmock.NewMockNotificationRepository(s.mockCtrl)
	s.mockUoW = uowmock.NewMockUnitOfWork(s.mockCtrl)
	s.now = time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	s.usecase = commands.NewBookingStatusCommands(
		s.mockBookings,
		s.mockNotifications,
		s.mockUoW,
		clock.NewFixedClock(s.now),
	)
}

func (s *BookingStatusTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingStatusSuite(t *testing.T) {
	suite.Run(t, new(BookingStatusTestSuite))
}

func (s *BookingStatusTestSuite) pendingBooking(id uuid.UUID) *booking.Booking {
	period, err := booking.NewRentalPeriod(
		time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)

	return booking.ReconstructBooking(
		id, uuid.New(),
		"Budi Santoso", "+628123456789", nil,
		period,
		"Jl. Sudirman No. 10", "Jl. Sudirman No. 10",
		nil, false,
		booking.NewMoney(350000), booking.NewMoney(700000),
		booking.StatusPending,
		s.now.Add(-time.Hour), s.now.Add(-time.Hour),
	)
}

func (s *BookingStatusTestSuite) TestTransition() {
	s.Run("success: updates status and enqueues notification in one tx", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockBookings.EXPECT().FindEntityByID(gomock.Any(), id).Return(s.pendingBooking(id), nil)
		s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
				return fn(ctx, nil)
			})
		s.mockBookings.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), id, booking.StatusConfirmed, s.now).
			Return(nil)
		s.mockNotifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_status_changed", gomock.Any(), s.now).
			Return(nil)

		s.NoError(s.usecase.Transition(context.Background(), id, booking.StatusConfirmed))
	})

	s.Run("unknown booking: not found sentinel", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockBookings.EXPECT().FindEntityByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound))

		err := s.usecase.Transition(context.Background(), id, booking.StatusConfirmed)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("illegal transition: rejected before any write", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockBookings.EXPECT().FindEntityByID(gomock.Any(), id).Return(s.pendingBooking(id), nil)

		err := s.usecase.Transition(context.Background(), id, booking.StatusCompleted)
		s.True(errs.Is(err, commands.ErrInvalidTransition))
	})

	s.Run("update failure: persistence sentinel", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockBookings.EXPECT().FindEntityByID(gomock.Any(), id).Return(s.pendingBooking(id), nil)
		s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("update failed", errs.New("db down")))

		err := s.usecase.Transition(context.Background(), id, booking.StatusCancelled)
		s.True(errs.Is(err, commands.ErrBookingPersistence))
	})
}
