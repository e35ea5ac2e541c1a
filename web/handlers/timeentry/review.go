package timeentry

import (
	"errors"
	"io"
	"net/http"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/web/common"
	"dmfengineering.com/timesheet/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewDTO struct {
	Decision string  `json:"decision" binding:"required"`
	Notes    *string `json:"notes,omitempty"`
}

// Review approves or rejects a submitted entry and notifies its owner. The
// notification is fire-and-forget: the transition has committed by the time
// delivery is attempted, and a delivery failure never rolls it back.
func (ep *Endpoint) Review(c *gin.Context) {
	var dto ReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	sess := middlewares.GetSession(c)
	db := ep.base.GetDB(c)

	entry, err := core.ReviewTimeEntry(db, sess, c.Param("id"), dto.Decision, dto.Notes)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	var owner models.Employee
	err = db.Where("id = ?", entry.EmployeeID).Take(&owner).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		common.AbortWithError(c, err)
		return
	}
	if err == nil {
		ep.base.Notifier.EntryReviewed(owner, entry, dto.Decision, dto.Notes)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(entry))
}

// ReviewQueue returns every entry awaiting review, oldest first.
func (ep *Endpoint) ReviewQueue(c *gin.Context) {
	sess := middlewares.GetSession(c)

	entries, err := core.ListSubmittedEntries(ep.base.GetDB(c), sess)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(entries))
}

type SearchParams struct {
	StartDate *common.DateOnly `json:"startDate,omitempty"`
	EndDate   *common.DateOnly `json:"endDate,omitempty"`
	Employees []string         `json:"employees,omitempty"`
	Statuses  []string         `json:"statuses,omitempty"`
}

// Search filters entries across employees. An empty body means no filters
// beyond the default submitted status.
func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	statuses := params.Statuses
	if len(statuses) == 0 {
		statuses = []string{models.StatusSubmitted}
	}

	query := ep.base.GetDB(c).
		Model(&models.TimeEntry{}).
		Where("status IN ?", statuses).
		Order("entry_date, created_at")
	if params.StartDate != nil {
		query = query.Where("entry_date >= ?", params.StartDate.String())
	}
	if params.EndDate != nil {
		query = query.Where("entry_date <= ?", params.EndDate.String())
	}
	if len(params.Employees) > 0 {
		query = query.Where("employee_id IN ?", params.Employees)
	}

	var entries []models.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(entries, int64(len(entries))))
}
