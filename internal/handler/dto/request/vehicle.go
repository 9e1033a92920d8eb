package request

import (
	"rentdesk/internal/usecase/commands"
)

type RegisterVehicleRequest struct {
	Code         string `json:"code" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Category     string `json:"category" binding:"required"`
	DailyRate    int64  `json:"daily_rate" binding:"required,gt=0"`
	Seats        int    `json:"seats" binding:"required,gt=0"`
	Transmission string `json:"transmission" binding:"required,oneof=manual automatic"`
	FuelType     string `json:"fuel_type" binding:"required"`
	Plate        string `json:"plate" binding:"required"`
	Year         int    `json:"year" binding:"required,gte=1990"`
}

func (r RegisterVehicleRequest) ToInput() commands.RegisterVehicleInput {
	return commands.RegisterVehicleInput{
		Code:         r.Code,
		Brand:        r.Brand,
		Model:        r.Model,
		Category:     r.Category,
		DailyRate:    r.DailyRate,
		Seats:        r.Seats,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Plate:        r.Plate,
		Year:         r.Year,
	}
}
