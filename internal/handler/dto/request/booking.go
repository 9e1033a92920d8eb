package request

import (
	"errors"
	"time"

	"rentdesk/internal/domain/booking"

	"github.com/google/uuid"
)

// CreateBookingRequest carries the booking form as submitted. Required
// checks live in the domain validator so a half-filled form still gets a
// full report, so no binding:"required" tags here beyond the JSON shape.
type CreateBookingRequest struct {
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerEmail   *string    `json:"customer_email,omitempty"`
	PickupAt        *time.Time `json:"pickup_datetime"`
	ReturnAt        *time.Time `json:"return_datetime"`
	PickupAddress   string     `json:"pickup_address"`
	ReturnAddress   *string    `json:"return_address,omitempty"`
	VehicleID       *uuid.UUID `json:"vehicle_id"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
	WithDriver      bool       `json:"with_driver"`
}

func (r CreateBookingRequest) ToDomain() booking.Request {
	req := booking.Request{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		PickupAddress:   r.PickupAddress,
		ReturnAddress:   r.ReturnAddress,
		SpecialRequests: r.SpecialRequests,
		WithDriver:      r.WithDriver,
	}
	if r.PickupAt != nil {
		req.PickupAt = *r.PickupAt
	}
	if r.ReturnAt != nil {
		req.ReturnAt = *r.ReturnAt
	}
	if r.VehicleID != nil {
		req.VehicleID = *r.VehicleID
	}
	return req
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r TransitionBookingRequest) ToDomain() (booking.Status, error) {
	status := booking.Status(r.Status)
	if !status.IsValid() {
		return "", errors.New("unknown booking status")
	}
	return status, nil
}
