package api

import (
	"net/http"

	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/handler/httperr"
	"rentdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Customers
// @Description Guest profiles with booking stats and loyalty tier
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Router /customers [get]
func (h *DashboardHandler) Customers(c *gin.Context) {
	views, err := h.dashboardQueries.Customers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(views))
}

// @Summary Drivers
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DriverResponse
// @Router /drivers [get]
func (h *DashboardHandler) Drivers(c *gin.Context) {
	views, err := h.dashboardQueries.Drivers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDriverViews(views))
}

// @Summary Financial summary
// @Description Revenue totals and a monthly breakdown
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FinancialSummaryResponse
// @Router /finance/summary [get]
func (h *DashboardHandler) FinancialSummary(c *gin.Context) {
	view, err := h.dashboardQueries.FinancialSummary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFinancialSummaryView(view))
}
