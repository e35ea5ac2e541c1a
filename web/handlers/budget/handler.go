package budget

import (
	"fmt"
	"net/http"

	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/utils"
	"dmfengineering.com/timesheet/web/common"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Endpoint struct {
	base common.Handler
}

// Register wires the admin-only reporting routes.
func Register(admin *gin.RouterGroup, base common.Handler) {
	endpoint := &Endpoint{base: base}
	admin.GET("/reports/budget", endpoint.Report)
	admin.GET("/reports/budget/export", endpoint.Export)
}

func (ep *Endpoint) buildReport(db *gorm.DB) (*core.BudgetReport, error) {
	items, err := core.GetBudgetItemsAdmin(db)
	if err != nil {
		return nil, err
	}

	var entries []models.TimeEntry
	if err := db.Where("status = ?", models.StatusApproved).Find(&entries).Error; err != nil {
		return nil, err
	}

	var employees []models.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, err
	}

	report := core.AnalyzeBudget(items, entries, core.BillingRates(employees))
	return &report, nil
}

func (ep *Endpoint) Report(c *gin.Context) {
	report, err := ep.buildReport(ep.base.GetDB(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(report))
}

// Export renders the budget report as a spreadsheet download.
func (ep *Endpoint) Export(c *gin.Context) {
	report, err := ep.buildReport(ep.base.GetDB(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Budget Utilization"
	index, err := f.NewSheet(sheet)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"WBS Code", "Project", "Task", "Subtask", "Budget", "Hours", "Cost", "Utilization %", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, item := range report.Items {
		values := []any{
			item.WbsCode,
			item.ProjectName,
			item.TaskDescription,
			utils.Format(item.SubtaskDescription),
			item.BudgetAmount,
			item.TotalHours,
			item.TotalCost,
			fmt.Sprintf("%.1f", item.UtilizationPercent),
			item.Status,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	summaryRow := len(report.Items) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow), report.TotalBudget)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), report.TotalSpent)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow), fmt.Sprintf("%.1f", report.OverallUtilization))
	f.SetCellValue(sheet, fmt.Sprintf("I%d", summaryRow), report.OverallStatus)

	c.Header("Content-Disposition", `attachment; filename="budget-report.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		common.AbortWithError(c, err)
	}
}
