package notification

import (
	"net/http"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/web/common"
	"dmfengineering.com/timesheet/web/middlewares"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, base common.Handler) {
	endpoint := &Endpoint{base: base}
	r.GET("/notifications", endpoint.List)
	r.PUT("/notifications/:id/read", endpoint.MarkRead)
}

func (ep *Endpoint) List(c *gin.Context) {
	sess := middlewares.GetSession(c)

	var notifications []models.Notification
	err := ep.base.GetDB(c).
		Where("user_id = ?", sess.Employee.UserID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(notifications))
}

func (ep *Endpoint) MarkRead(c *gin.Context) {
	sess := middlewares.GetSession(c)

	result := ep.base.GetDB(c).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("id"), sess.Employee.UserID).
		Update("read", true)
	if result.Error != nil {
		common.AbortWithError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		common.AbortWithError(c, &core.NotFoundError{Resource: "notification", Key: c.Param("id")})
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
