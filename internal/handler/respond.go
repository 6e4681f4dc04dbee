package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmfarias/warranty-service/internal/apperr"
	"github.com/rmfarias/warranty-service/internal/dto"
)

// respondError writes the client response for a service error. Internal
// errors keep their message out of the response body.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "unexpected error"
	}
	c.JSON(status, dto.ErrorResponse{
		Error:   apperr.Label(err),
		Message: message,
	})
}

// respondBindError writes the response for a failed request binding.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Validation failed",
		Message: err.Error(),
	})
}

// pathID parses a numeric path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "invalid " + name + " parameter",
		})
		return 0, false
	}
	return id, true
}
