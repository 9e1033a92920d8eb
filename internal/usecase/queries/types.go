package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side).

type VehicleView struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Category     string    `json:"category"`
	DailyRate    int64     `json:"daily_rate"`
	Seats        int32     `json:"seats"`
	Transmission string    `json:"transmission"`
	FuelType     string    `json:"fuel_type"`
	Status       string    `json:"status"`
	IsActive     bool      `json:"is_active"`
	Plate        string    `json:"plate"`
	Year         int32     `json:"year"`
}

type BookingView struct {
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

type CustomerView struct {
	FullName      string     `json:"full_name"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	BookingCount  int64      `json:"booking_count"`
	TotalSpent    int64      `json:"total_spent"`
	LoyaltyTier   string     `json:"loyalty_tier"`
	LastBookingAt *time.Time `json:"last_booking_at,omitempty"`
}

type DriverView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	LicenseNo string    `json:"license_no"`
	Status    string    `json:"status"`
	TripCount int64     `json:"trip_count"`
	Rating    float64   `json:"rating"`
}

type FleetStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyRevenue struct {
	Month    string `json:"month"` // YYYY-MM
	Revenue  int64  `json:"revenue"`
	Bookings int64  `json:"bookings"`
}

type FinancialSummaryView struct {
	TotalRevenue   int64            `json:"total_revenue"`
	TotalBookings  int64            `json:"total_bookings"`
	ActiveBookings int64            `json:"active_bookings"`
	Monthly        []MonthlyRevenue `json:"monthly"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
