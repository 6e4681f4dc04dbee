package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmfarias/warranty-service/internal/dto"
	"github.com/rmfarias/warranty-service/internal/service"
)

// PartHandler handles part CRUD requests
type PartHandler struct {
	parts service.PartService
}

// NewPartHandler creates a new part handler
func NewPartHandler(parts service.PartService) *PartHandler {
	return &PartHandler{parts: parts}
}

func (h *PartHandler) Create(c *gin.Context) {
	var req dto.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	part, err := h.parts.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

func (h *PartHandler) List(c *gin.Context) {
	parts, err := h.parts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *PartHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	part, err := h.parts.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) GetByName(c *gin.Context) {
	part, err := h.parts.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.parts.Update(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Part updated"})
}

// DeleteByName removes a part by its name, the natural key used by clients.
func (h *PartHandler) DeleteByName(c *gin.Context) {
	if err := h.parts.DeleteByName(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Part deleted"})
}
