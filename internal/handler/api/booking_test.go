//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rentdesk/internal/domain/booking"
	"rentdesk/internal/handler/api"
	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/commands"
	"rentdesk/internal/usecase/queries"
	"rentdesk/tests/common/builder"
	"rentdesk/tests/common/httptest"
	"rentdesk/tests/common/testutil"
	commandsmock "rentdesk/tests/mock/commands"
	queriesmock "rentdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockCommands       *commandsmock.MockBookingCommands
	mockStatusCommands *commandsmock.MockBookingStatusCommands
	mockQueries        *queriesmock.MockBookingQueries
	mockPricing        *queriesmock.MockPricingQueries
	handler            *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockStatusCommands = commandsmock.NewMockBookingStatusCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockStatusCommands, s.mockQueries, s.mockPricing)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/quote", s.handler.Quote)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PATCH("/bookings/:id/status", s.handler.Transition)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingForm() map[string]any {
	b := builder.NewBookingRequestBuilder()
	return map[string]any{
		"customer_name":   b.CustomerName,
		"customer_phone":  b.CustomerPhone,
		"customer_email":  *b.CustomerEmail,
		"pickup_datetime": b.PickupAt.Format(time.RFC3339),
		"return_datetime": b.ReturnAt.Format(time.RFC3339),
		"pickup_address":  b.PickupAddress,
		"vehicle_id":      b.VehicleID.String(),
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	s.Run("success: returns 201 with the persisted booking", func() {
		s.SetupTest()
		snapshot := builder.NewVehicleSnapshotBuilder().Build()
		view := builder.NewBookingRequestBuilder().BuildView(snapshot, 700000)

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingForm(), "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(int64(700000), response.TotalAmount)
		s.Equal("pending", response.Status)
	})

	s.Run("validation failure: 400 with the aggregate violation detail", func() {
		s.SetupTest()
		verr := &booking.ValidationError{Violations: []booking.Violation{
			{Field: "customer_phone", Kind: booking.KindMissingField},
			{Field: "return_datetime", Kind: booking.KindInvalidDateRange},
		}}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, verr)

		form := testutil.DtoMap(s.T(), s.bookingForm(), testutil.Field("customer_phone", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, form, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "incomplete or invalid")
		s.Contains(rec.Body.String(), "customer_phone")
		s.Contains(rec.Body.String(), "invalid_date_range")
	})

	s.Run("unknown vehicle: 404", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrVehicleNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingForm(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Vehicle not found")
	})

	s.Run("unavailable vehicle: 422", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrVehicleNotAvailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingForm(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not available")
	})

	s.Run("overlapping booking: 409", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingForm(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("persistence failure: 500 with a generic message", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingPersistence)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingForm(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to save booking")
	})

	s.Run("malformed body: 400", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-json", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestQuote() {
	s.Run("complete inputs return the estimate", func() {
		s.SetupTest()
		vehicleID := uuid.New()
		pickup := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		ret := pickup.Add(48 * time.Hour)

		s.mockPricing.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&queries.QuoteView{
				VehicleID: &vehicleID,
				Days:      2,
				DailyRate: 350000,
				Total:     700000,
				Complete:  true,
			}, nil)

		url := fmt.Sprintf("/bookings/quote?vehicle_id=%s&pickup_datetime=%s&return_datetime=%s",
			vehicleID, pickup.Format(time.RFC3339), ret.Format(time.RFC3339))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(700000), response.Total)
		s.Equal(2, response.Days)
		s.True(response.Complete)
	})

	s.Run("empty form still returns 200 with the zero quote", func() {
		s.SetupTest()
		s.mockPricing.EXPECT().Quote(gomock.Any(), nil, nil, nil).
			Return(&queries.QuoteView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/quote", nil, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.Total)
		s.False(response.Complete)
	})

	s.Run("malformed vehicle id: 400", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/quote?vehicle_id=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid vehicle ID")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("unknown id: 404", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("malformed id: 400", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestTransition() {
	s.Run("success: 204", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockStatusCommands.EXPECT().Transition(gomock.Any(), id, booking.StatusConfirmed).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+id.String()+"/status", map[string]any{"status": "confirmed"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("illegal transition: 422", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockStatusCommands.EXPECT().Transition(gomock.Any(), id, booking.StatusCompleted).
			Return(commands.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+id.String()+"/status", map[string]any{"status": "completed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot move")
	})

	s.Run("illegal transition from the domain check: 422", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockStatusCommands.EXPECT().Transition(gomock.Any(), id, booking.StatusOngoing).
			Return(errs.Mark(errs.New("cannot transition from completed to ongoing"), commands.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+id.String()+"/status", map[string]any{"status": "ongoing"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot move")
	})

	s.Run("unknown status: 400", func() {
		s.SetupTest()
		id := uuid.New()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+id.String()+"/status", map[string]any{"status": "parked"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown booking status")
	})
}
