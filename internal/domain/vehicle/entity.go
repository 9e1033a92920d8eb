package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBrand     = errors.New("vehicle brand cannot be empty")
	ErrEmptyModel     = errors.New("vehicle model cannot be empty")
	ErrInvalidRate    = errors.New("daily rate must be positive")
	ErrInvalidSeats   = errors.New("seat count must be positive")
	ErrInvalidStatus  = errors.New("invalid vehicle status")
	ErrInvalidGearbox = errors.New("invalid transmission type")
)

// Vehicle is owned by fleet management; the booking core reads it only.
type Vehicle struct {
	id           uuid.UUID
	code         string // fleet code shown on the dashboard, e.g. V001
	brand        string
	model        string
	category     string
	dailyRate    int64 // rupiah per day
	seats        int
	transmission Transmission
	fuelType     string
	status       Status
	isActive     bool
	plate        string
	year         int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewVehicle(
	code, brand, model, category string,
	dailyRate int64,
	seats int,
	transmission Transmission,
	fuelType string,
	status Status,
	plate string,
	year int,
) (*Vehicle, error) {
	if strings.TrimSpace(brand) == "" {
		return nil, ErrEmptyBrand
	}
	if strings.TrimSpace(model) == "" {
		return nil, ErrEmptyModel
	}
	if dailyRate <= 0 {
		return nil, ErrInvalidRate
	}
	if seats <= 0 {
		return nil, ErrInvalidSeats
	}
	if !transmission.IsValid() {
		return nil, ErrInvalidGearbox
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Vehicle{
		id:           uuid.New(),
		code:         strings.TrimSpace(code),
		brand:        strings.TrimSpace(brand),
		model:        strings.TrimSpace(model),
		category:     strings.TrimSpace(category),
		dailyRate:    dailyRate,
		seats:        seats,
		transmission: transmission,
		fuelType:     fuelType,
		status:       status,
		isActive:     true,
		plate:        plate,
		year:         year,
	}, nil
}

func ReconstructVehicle(
	id uuid.UUID,
	code, brand, model, category string,
	dailyRate int64,
	seats int,
	transmission Transmission,
	fuelType string,
	status Status,
	isActive bool,
	plate string,
	year int,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:           id,
		code:         code,
		brand:        brand,
		model:        model,
		category:     category,
		dailyRate:    dailyRate,
		seats:        seats,
		transmission: transmission,
		fuelType:     fuelType,
		status:       status,
		isActive:     isActive,
		plate:        plate,
		year:         year,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Bookable reports whether the vehicle may appear on the booking form.
func (v *Vehicle) Bookable() bool {
	return v.isActive && v.status == StatusAvailable
}

func (v *Vehicle) ID() uuid.UUID              { return v.id }
func (v *Vehicle) Code() string               { return v.code }
func (v *Vehicle) Brand() string              { return v.brand }
func (v *Vehicle) Model() string              { return v.model }
func (v *Vehicle) Category() string           { return v.category }
func (v *Vehicle) DailyRate() int64           { return v.dailyRate }
func (v *Vehicle) Seats() int                 { return v.seats }
func (v *Vehicle) Transmission() Transmission { return v.transmission }
func (v *Vehicle) FuelType() string           { return v.fuelType }
func (v *Vehicle) Status() Status             { return v.status }
func (v *Vehicle) IsActive() bool             { return v.isActive }
func (v *Vehicle) Plate() string              { return v.plate }
func (v *Vehicle) Year() int                  { return v.year }
func (v *Vehicle) CreatedAt() time.Time       { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time       { return v.updatedAt }
