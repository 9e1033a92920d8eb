package api

import (
	"log/slog"
	"net/http"

	reqdto "rentdesk/internal/handler/dto/request"
	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/handler/httperr"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/commands"
	"rentdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleQueries  queries.VehicleQueries
	vehicleCommands commands.VehicleCommands
}

func NewVehicleHandler(vehicleQueries queries.VehicleQueries, vehicleCommands commands.VehicleCommands) *VehicleHandler {
	return &VehicleHandler{vehicleQueries: vehicleQueries, vehicleCommands: vehicleCommands}
}

// @Summary Booking catalog
// @Description Vehicles the booking form may offer. A failed read degrades
// @Description to an empty list with an error notice so the form keeps working.
// @Tags vehicles
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /vehicles [get]
func (h *VehicleHandler) Catalog(c *gin.Context) {
	views, err := h.vehicleQueries.ListBookable(c.Request.Context())
	if err != nil {
		if errs.Is(err, queries.ErrCatalogFetch) {
			slog.Error("vehicle catalog fetch failed", "error", err.Error())
			c.JSON(http.StatusOK, resdto.CatalogResponse{
				Vehicles: []*resdto.VehicleResponse{},
				Notice:   resdto.ErrorNotice("Vehicle catalog is temporarily unavailable"),
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CatalogResponse{
		Vehicles: resdto.FromVehicleViews(views),
	})
}

// @Summary Fleet overview
// @Description Every vehicle plus per-status counts for the dashboard
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FleetResponse
// @Router /fleet [get]
func (h *VehicleHandler) Fleet(c *gin.Context) {
	views, counts, err := h.vehicleQueries.ListFleet(c.Request.Context())
	if err != nil {
		if errs.Is(err, queries.ErrCatalogFetch) {
			slog.Error("fleet fetch failed", "error", err.Error())
			c.JSON(http.StatusOK, resdto.FleetResponse{
				Vehicles: []*resdto.VehicleResponse{},
				Counts:   []*resdto.FleetStatusResponse{},
				Notice:   resdto.ErrorNotice("Fleet data is temporarily unavailable"),
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FleetResponse{
		Vehicles: resdto.FromVehicleViews(views),
		Counts:   resdto.FromFleetStatusCounts(counts),
	})
}

// @Summary Register vehicle
// @Description Add a vehicle to the fleet
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle details"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	var req reqdto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entity, err := h.vehicleCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrVehicleCodeTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle code already in use", nil)
		case errs.Is(err, commands.ErrVehiclePersistence):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save vehicle", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle details", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVehicleEntity(entity))
}
