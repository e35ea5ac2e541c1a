package common

import (
	"errors"
	"net/http"

	"dmfengineering.com/timesheet/core"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler is the shared base every endpoint embeds.
type Handler struct {
	Dm       *core.DatabaseManager
	Notifier *core.Notifier
}

// GetDB returns a request-scoped GORM handle.
func (h *Handler) GetDB(c *gin.Context) *gorm.DB {
	return h.Dm.GetDB(c.Request.Context())
}

// AbortWithError maps the core error taxonomy onto HTTP statuses.
func AbortWithError(c *gin.Context, err error) {
	var ve *core.ValidationError
	var pe *core.PermissionError
	var nf *core.NotFoundError
	var ese *core.ExternalServiceError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
	case errors.As(err, &pe):
		c.JSON(http.StatusForbidden, NewErrorResponse(err.Error()))
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, NewErrorResponse(err.Error()))
	case errors.As(err, &ese):
		c.JSON(http.StatusBadGateway, NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
	}
}
