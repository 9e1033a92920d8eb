package response

import (
	"time"

	"rentdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	FullName      string     `json:"full_name"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	BookingCount  int64      `json:"booking_count"`
	TotalSpent    int64      `json:"total_spent"`
	LoyaltyTier   string     `json:"loyalty_tier"`
	LastBookingAt *time.Time `json:"last_booking_at,omitempty"`
}

type DriverResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	LicenseNo string    `json:"license_no"`
	Status    string    `json:"status"`
	TripCount int64     `json:"trip_count"`
	Rating    float64   `json:"rating"`
}

type MonthlyRevenueResponse struct {
	Month    string `json:"month"`
	Revenue  int64  `json:"revenue"`
	Bookings int64  `json:"bookings"`
}

type FinancialSummaryResponse struct {
	TotalRevenue   int64                    `json:"total_revenue"`
	TotalBookings  int64                    `json:"total_bookings"`
	ActiveBookings int64                    `json:"active_bookings"`
	Monthly        []MonthlyRevenueResponse `json:"monthly"`
}

func FromCustomerViews(views []*queries.CustomerView) []*CustomerResponse {
	customers := make([]*CustomerResponse, len(views))
	for i, v := range views {
		var resp CustomerResponse
		_ = copier.Copy(&resp, v)
		customers[i] = &resp
	}
	return customers
}

func FromDriverViews(views []*queries.DriverView) []*DriverResponse {
	drivers := make([]*DriverResponse, len(views))
	for i, v := range views {
		var resp DriverResponse
		_ = copier.Copy(&resp, v)
		drivers[i] = &resp
	}
	return drivers
}

func FromFinancialSummaryView(view *queries.FinancialSummaryView) *FinancialSummaryResponse {
	var resp FinancialSummaryResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
