package catalog

import (
	"net/http"
	"strconv"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/utils"
	"dmfengineering.com/timesheet/web/common"
	"dmfengineering.com/timesheet/web/middlewares"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, base common.Handler) {
	endpoint := &Endpoint{base: base}
	r.GET("/catalog", endpoint.List)
	r.GET("/catalog/projects", endpoint.Projects)
	r.GET("/catalog/projects/:project/tasks", endpoint.Tasks)
	r.GET("/catalog/projects/:project/tasks/:task/subtasks", endpoint.Subtasks)
	r.GET("/catalog/resolve", endpoint.Resolve)
}

// List returns the catalog shaped for the caller's role. The employee path
// never carries budget figures; that projection happens in core, before
// serialization.
func (ep *Endpoint) List(c *gin.Context) {
	sess := middlewares.GetSession(c)

	items, err := core.GetBudgetItems(ep.base.GetDB(c), sess.Employee.Role)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(items))
}

func (ep *Endpoint) Projects(c *gin.Context) {
	items, err := core.GetBudgetItemsEmployee(ep.base.GetDB(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(core.UniqueProjects(items)))
}

func (ep *Endpoint) Tasks(c *gin.Context) {
	project, err := strconv.Atoi(c.Param("project"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid project number"))
		return
	}

	items, err := core.GetBudgetItemsEmployee(ep.base.GetDB(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(core.TasksForProject(items, project)))
}

func (ep *Endpoint) Subtasks(c *gin.Context) {
	project, err := strconv.Atoi(c.Param("project"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid project number"))
		return
	}
	task, err := strconv.Atoi(c.Param("task"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid task number"))
		return
	}

	items, err := core.GetBudgetItemsEmployee(ep.base.GetDB(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(core.SubtasksForTask(items, project, task)))
}

// Resolve maps (project, task, subtask?) query params onto a wbs_code. The
// three keys arrive as UI strings; they are parsed to numbers here, once, and
// matched exactly against the catalog.
func (ep *Endpoint) Resolve(c *gin.Context) {
	project, err := strconv.Atoi(c.Query("project"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid project number"))
		return
	}
	task, err := strconv.Atoi(c.Query("task"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid task number"))
		return
	}
	var subtask *float64
	if raw := c.Query("subtask"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid subtask number"))
			return
		}
		subtask = utils.Ptr(value)
	}

	items, err := core.GetBudgetItemsEmployee(ep.base.GetDB(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	code, err := core.ResolveWbsCode(items, project, task, subtask)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"wbsCode": code}))
}
