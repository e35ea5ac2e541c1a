package suggest

import (
	"net/http"

	"dmfengineering.com/timesheet/ai/suggest"
	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/web/common"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base    common.Handler
	service *suggest.Service
}

func Register(r *gin.RouterGroup, base common.Handler, service *suggest.Service) {
	endpoint := &Endpoint{base: base, service: service}
	r.POST("/suggestions", endpoint.Suggest)
}

type SuggestDTO struct {
	Transcript string `json:"transcript" binding:"required"`

	// LocalDate anchors relative phrases like "today" to the caller's
	// calendar, not the server's.
	LocalDate string `json:"localDate,omitempty"`
}

func (ep *Endpoint) Suggest(c *gin.Context) {
	var dto SuggestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	items, err := core.GetBudgetItemsEmployee(ep.base.GetDB(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	suggestions, err := ep.service.Suggest(c.Request.Context(), dto.Transcript, dto.LocalDate, items)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"suggestions": suggestions}))
}
