package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/service"
)

// LocationHandler handles location CRUD requests
type LocationHandler struct {
	locations service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locations service.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	location, err := h.locations.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locations.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	location, err := h.locations.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) GetByMarket(c *gin.Context) {
	locations, err := h.locations.GetByMarket(c.Request.Context(), c.Param("market"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetByCountry(c *gin.Context) {
	locations, err := h.locations.GetByCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetByProvince(c *gin.Context) {
	locations, err := h.locations.GetByProvince(c.Request.Context(), c.Param("province"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetByCity(c *gin.Context) {
	locations, err := h.locations.GetByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.locations.Update(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Location updated"})
}

func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.locations.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Location deleted"})
}
