package response

import (
	"rentdesk/internal/domain/vehicle"
	"rentdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
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

// CatalogResponse always carries a vehicle list, possibly empty, plus an
// optional notice when the catalog read degraded.
type CatalogResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Notice   *Notice            `json:"notice,omitempty"`
}

type FleetStatusResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type FleetResponse struct {
	Vehicles []*VehicleResponse     `json:"vehicles"`
	Counts   []*FleetStatusResponse `json:"counts"`
	Notice   *Notice                `json:"notice,omitempty"`
}

func FromVehicleViews(views []*queries.VehicleView) []*VehicleResponse {
	vehicles := make([]*VehicleResponse, len(views))
	for i, v := range views {
		var resp VehicleResponse
		_ = copier.Copy(&resp, v)
		vehicles[i] = &resp
	}
	return vehicles
}

func FromVehicleEntity(v *vehicle.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID(),
		Code:         v.Code(),
		Brand:        v.Brand(),
		Model:        v.Model(),
		Category:     v.Category(),
		DailyRate:    v.DailyRate(),
		Seats:        int32(v.Seats()),
		Transmission: v.Transmission().String(),
		FuelType:     v.FuelType(),
		Status:       v.Status().String(),
		IsActive:     v.IsActive(),
		Plate:        v.Plate(),
		Year:         int32(v.Year()),
	}
}

func FromFleetStatusCounts(counts []*queries.FleetStatusCount) []*FleetStatusResponse {
	out := make([]*FleetStatusResponse, len(counts))
	for i, c := range counts {
		out[i] = &FleetStatusResponse{Status: c.Status, Count: c.Count}
	}
	return out
}
