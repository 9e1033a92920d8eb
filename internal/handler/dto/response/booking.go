package response

import (
	"time"

	"rentdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	VehicleCode     string    `json:"vehicle_code"`
	VehicleName     string    `json:"vehicle_name"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   *string   `json:"customer_email,omitempty"`
	PickupAt        time.Time `json:"pickup_datetime"`
	ReturnAt        time.Time `json:"return_datetime"`
	PickupAddress   string    `json:"pickup_address"`
	ReturnAddress   string    `json:"return_address"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	WithDriver      bool      `json:"with_driver"`
	DailyRate       int64     `json:"daily_rate"`
	TotalAmount     int64     `json:"total_amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

type QuoteResponse struct {
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty"`
	Days      int        `json:"days"`
	DailyRate int64      `json:"daily_rate"`
	Total     int64      `json:"total"`
	Complete  bool       `json:"complete"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) *BookingListResponse {
	bookings := make([]*BookingResponse, len(views))
	for i, v := range views {
		bookings[i] = FromBookingView(v)
	}
	return &BookingListResponse{Bookings: bookings}
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
