package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmfarias/warranty-service/internal/service"
)

// AnalyticsHandler serves the reporting endpoints
type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// PurchasesByType reports purchase volume and top parts for one purchase type
func (h *AnalyticsHandler) PurchasesByType(c *gin.Context) {
	report, err := h.analytics.PurchasesByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// VehicleModel reports fleet composition and warranty history for one model
func (h *AnalyticsHandler) VehicleModel(c *gin.Context) {
	report, err := h.analytics.VehicleModel(c.Request.Context(), c.Param("model"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// PropulsionType reports per-part failure pressure for one propulsion type
func (h *AnalyticsHandler) PropulsionType(c *gin.Context) {
	report, err := h.analytics.PropulsionType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SupplierParts reports the warranty record of one supplier's parts
func (h *AnalyticsHandler) SupplierParts(c *gin.Context) {
	report, err := h.analytics.SupplierParts(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SupplierByProvince compares suppliers located in one province
func (h *AnalyticsHandler) SupplierByProvince(c *gin.Context) {
	report, err := h.analytics.SupplierByProvince(c.Request.Context(), c.Param("province"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
