package api

import (
	"errors"
	"net/http"
	"time"

	"rentdesk/internal/domain/booking"
	reqdto "rentdesk/internal/handler/dto/request"
	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/handler/httperr"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/commands"
	"rentdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	statusCommands  commands.BookingStatusCommands
	bookingQueries  queries.BookingQueries
	pricingQueries  queries.PricingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	statusCommands commands.BookingStatusCommands,
	bookingQueries queries.BookingQueries,
	pricingQueries queries.PricingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		statusCommands:  statusCommands,
		bookingQueries:  bookingQueries,
		pricingQueries:  pricingQueries,
	}
}

type violationDetail struct {
	Field string `json:"field"`
	Kind  string `json:"kind"`
}

// @Summary Submit booking
// @Description Validate, price and persist a new pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking form"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			details := make([]violationDetail, len(verr.Violations))
			for i, v := range verr.Violations {
				details[i] = violationDetail{Field: v.Field, Kind: string(v.Kind)}
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking request is incomplete or invalid", details)
		case errs.Is(err, commands.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errs.Is(err, commands.ErrVehicleNotAvailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Vehicle is not available for booking", nil)
		case errs.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle is already booked for an overlapping period", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save booking", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(result.Booking))
}

// @Summary Price quote
// @Description Estimate the rental total for the live booking form
// @Tags bookings
// @Produce json
// @Param vehicle_id query string false "Vehicle ID"
// @Param pickup_datetime query string false "Pickup datetime (RFC3339)"
// @Param return_datetime query string false "Return datetime (RFC3339)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/quote [get]
func (h *BookingHandler) Quote(c *gin.Context) {
	vehicleID, err := optionalUUIDQuery(c, "vehicle_id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}
	pickup, err := optionalTimeQuery(c, "pickup_datetime")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pickup datetime format", nil)
		return
	}
	ret, err := optionalTimeQuery(c, "return_datetime")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid return datetime format", nil)
		return
	}

	quote, err := h.pricingQueries.Quote(c.Request.Context(), vehicleID, pickup, ret)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute quote", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param phone query string false "Filter by customer phone"
// @Success 200 {object} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	if phone := c.Query("phone"); phone != "" {
		views, err := h.bookingQueries.ListByPhone(c.Request.Context(), phone)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromBookingViews(views))
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		if !booking.Status(s).IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("unknown status"), "Unknown booking status", nil)
			return
		}
		status = &s
	}

	views, err := h.bookingQueries.List(c.Request.Context(), status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Transition booking status
// @Description Move a booking along its lifecycle (confirm, start, complete, cancel)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Target status"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	next, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown booking status", nil)
		return
	}

	if err := h.statusCommands.Transition(c.Request.Context(), id, next); err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking cannot move to that status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func optionalUUIDQuery(c *gin.Context, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalTimeQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
