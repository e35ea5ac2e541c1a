package timeentry

import (
	"net/http"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/web/common"
	"dmfengineering.com/timesheet/web/middlewares"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, admin *gin.RouterGroup, base common.Handler) {
	endpoint := &Endpoint{base: base}
	r.GET("/time-entries", endpoint.List)
	r.POST("/time-entries", endpoint.Create)
	r.PUT("/time-entries/:id", endpoint.Update)
	r.DELETE("/time-entries/:id", endpoint.Delete)
	r.POST("/time-entries/submit", endpoint.Submit)
	r.POST("/time-entries/submit-week", endpoint.SubmitWeek)
	r.GET("/time-entries/recent", endpoint.Recent)

	admin.GET("/time-entries/review-queue", endpoint.ReviewQueue)
	admin.POST("/time-entries/search", endpoint.Search)
	admin.PUT("/time-entries/:id/review", endpoint.Review)
}

type TimeEntryCreateDTO struct {
	WbsCode     string          `json:"wbsCode" binding:"required"`
	EntryDate   common.DateOnly `json:"entryDate" binding:"required"`
	Hours       float64         `json:"hours" binding:"required"`
	Description *string         `json:"description,omitempty"`
}

type TimeEntryUpdateDTO struct {
	EntryDate   *common.DateOnly `json:"entryDate,omitempty"`
	Hours       *float64         `json:"hours,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (ep *Endpoint) List(c *gin.Context) {
	sess := middlewares.GetSession(c)

	entries, err := core.ListTimeEntries(ep.base.GetDB(c), sess)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(entries))
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto TimeEntryCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	sess := middlewares.GetSession(c)
	entry, err := core.CreateTimeEntry(ep.base.GetDB(c), sess, core.NewTimeEntry{
		WbsCode:     dto.WbsCode,
		EntryDate:   dto.EntryDate.String(),
		Hours:       dto.Hours,
		Description: dto.Description,
	})
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(entry))
}

func (ep *Endpoint) Update(c *gin.Context) {
	var dto TimeEntryUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	update := core.TimeEntryUpdate{
		Hours:       dto.Hours,
		Description: dto.Description,
	}
	if dto.EntryDate != nil {
		date := dto.EntryDate.String()
		update.EntryDate = &date
	}

	sess := middlewares.GetSession(c)
	entry, err := core.UpdateTimeEntry(ep.base.GetDB(c), sess, c.Param("id"), update)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(entry))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	sess := middlewares.GetSession(c)

	if err := core.DeleteTimeEntry(ep.base.GetDB(c), sess, c.Param("id")); err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

type SubmitDTO struct {
	Date common.DateOnly `json:"date" binding:"required"`
}

type SubmitWeekDTO struct {
	WeekStart common.DateOnly `json:"weekStart" binding:"required"`
	WeekEnd   common.DateOnly `json:"weekEnd" binding:"required"`
}

// Submit moves the day's drafts to submitted. Submitting a day with no
// drafts reports zero transitions, not an error.
func (ep *Endpoint) Submit(c *gin.Context) {
	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	sess := middlewares.GetSession(c)
	count, err := core.SubmitTimesheet(ep.base.GetDB(c), sess, dto.Date.String())
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	if count > 0 {
		ep.base.Notifier.TimesheetSubmitted(sess.Employee, dto.Date.String(), count)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"submitted": count}))
}

func (ep *Endpoint) SubmitWeek(c *gin.Context) {
	var dto SubmitWeekDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	sess := middlewares.GetSession(c)
	count, err := core.SubmitWeek(ep.base.GetDB(c), sess, dto.WeekStart.String(), dto.WeekEnd.String())
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	if count > 0 {
		label := dto.WeekStart.String() + " to " + dto.WeekEnd.String()
		ep.base.Notifier.TimesheetSubmitted(sess.Employee, label, count)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"submitted": count}))
}

func (ep *Endpoint) Recent(c *gin.Context) {
	sess := middlewares.GetSession(c)
	db := ep.base.GetDB(c)

	entries, err := core.ListTimeEntries(db, sess)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	items, err := core.GetBudgetItemsEmployee(db)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	recents := core.RecentWbsCodes(entries, items, core.RecentEntriesLimit)
	c.JSON(http.StatusOK, common.NewSuccessResponse(recents))
}
