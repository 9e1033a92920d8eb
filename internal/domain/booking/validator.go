package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request is the transient form payload, not yet a Booking.
type Request struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	PickupAt        time.Time
	ReturnAt        time.Time
	PickupAddress   string
	ReturnAddress   *string
	VehicleID       uuid.UUID
	SpecialRequests *string
	WithDriver      bool
}

// EffectiveReturnAddress defaults to the pickup address when none is given.
func (r Request) EffectiveReturnAddress() string {
	if r.ReturnAddress != nil && strings.TrimSpace(*r.ReturnAddress) != "" {
		return strings.TrimSpace(*r.ReturnAddress)
	}
	return strings.TrimSpace(r.PickupAddress)
}

type ViolationKind string

const (
	KindMissingField     ViolationKind = "missing_field"
	KindInvalidDateRange ViolationKind = "invalid_date_range"
)

type Violation struct {
	Field string
	Kind  ViolationKind
}

// ValidationError is the aggregate report for a rejected Request: every
// failed check is collected so the caller sees the whole picture at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field + " (" + string(v.Kind) + ")"
	}
	return "booking request invalid: " + strings.Join(fields, ", ")
}

func (e *ValidationError) Has(field string, kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}

// ValidateRequest gates submission. Required fields match the booking form:
// name, phone, pickup/return datetimes, vehicle and pickup address. The
// date ordering is re-checked here even though the form enforces it.
func ValidateRequest(req Request) *ValidationError {
	var violations []Violation

	missing := func(field string) {
		violations = append(violations, Violation{Field: field, Kind: KindMissingField})
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		missing("customer_name")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		missing("customer_phone")
	}
	if req.PickupAt.IsZero() {
		missing("pickup_datetime")
	}
	if req.ReturnAt.IsZero() {
		missing("return_datetime")
	}
	if req.VehicleID == uuid.Nil {
		missing("vehicle_id")
	}
	if strings.TrimSpace(req.PickupAddress) == "" {
		missing("pickup_address")
	}

	if !req.PickupAt.IsZero() && !req.ReturnAt.IsZero() && !req.ReturnAt.After(req.PickupAt) {
		violations = append(violations, Violation{Field: "return_datetime", Kind: KindInvalidDateRange})
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
