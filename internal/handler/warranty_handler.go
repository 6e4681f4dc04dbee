package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/service"
)

// WarrantyHandler handles warranty claim CRUD requests
type WarrantyHandler struct {
	warranties service.WarrantyService
}

// NewWarrantyHandler creates a new warranty handler
func NewWarrantyHandler(warranties service.WarrantyService) *WarrantyHandler {
	return &WarrantyHandler{warranties: warranties}
}

func (h *WarrantyHandler) Create(c *gin.Context) {
	var req dto.CreateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	warranty, err := h.warranties.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, warranty)
}

func (h *WarrantyHandler) List(c *gin.Context) {
	warranties, err := h.warranties.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, warranties)
}

func (h *WarrantyHandler) GetByClaimKey(c *gin.Context) {
	claimKey, ok := pathID(c, "id")
	if !ok {
		return
	}

	warranty, err := h.warranties.GetByClaimKey(c.Request.Context(), claimKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, warranty)
}

func (h *WarrantyHandler) Update(c *gin.Context) {
	claimKey, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.warranties.Update(c.Request.Context(), claimKey, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Warranty claim updated"})
}

func (h *WarrantyHandler) Delete(c *gin.Context) {
	claimKey, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.warranties.Delete(c.Request.Context(), claimKey); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Warranty claim deleted"})
}
