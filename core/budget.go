package core

import (
	"sort"

	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/utils"
)

// DefaultHourlyRate applies when an employee has no billing rate on file.
const DefaultHourlyRate = 75.0

// Utilization bands. The lower bound of each band is exclusive, the upper
// inclusive: exactly 75% is still under-budget.
const (
	BandUnderBudget = "under-budget"
	BandOnTrack     = "on-track"
	BandOverBudget  = "over-budget"
)

// SubtaskUtilization is the budget position of a single catalog leaf.
type SubtaskUtilization struct {
	WbsCode            string   `json:"wbsCode"`
	SubtaskNumber      *float64 `json:"subtaskNumber"`
	SubtaskDescription *string  `json:"subtaskDescription"`
	TaskDescription    string   `json:"taskDescription"`
	ProjectName        string   `json:"projectName"`
	BudgetAmount       float64  `json:"budgetAmount"`
	TotalHours         float64  `json:"totalHours"`
	TotalCost          float64  `json:"totalCost"`
	UtilizationPercent float64  `json:"utilizationPercent"`
	Status             string   `json:"status"`
}

// BudgetReport aggregates every catalog leaf, highest utilization first.
type BudgetReport struct {
	Items              []SubtaskUtilization `json:"items"`
	TotalBudget        float64              `json:"totalBudget"`
	TotalSpent         float64              `json:"totalSpent"`
	OverallUtilization float64              `json:"overallUtilization"`
	OverallStatus      string               `json:"overallStatus"`
}

// UtilizationStatus bands a utilization percentage.
func UtilizationStatus(percent float64) string {
	switch {
	case percent <= 75:
		return BandUnderBudget
	case percent <= 90:
		return BandOnTrack
	default:
		return BandOverBudget
	}
}

// utilizationPercent guards the zero-budget case: no budget means 0%, not a
// division by zero.
func utilizationPercent(cost, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return cost / budget * 100
}

// AnalyzeBudget computes per-leaf utilization from approved entries only.
// Each entry is costed at its employee's billing rate, falling back to
// DefaultHourlyRate when the rate is unset.
func AnalyzeBudget(items []models.BudgetItem, entries []models.TimeEntry, ratesByEmployee map[string]float64) BudgetReport {
	approved := utils.Filter(entries, func(e models.TimeEntry) bool {
		return e.Status == models.StatusApproved
	})
	byCode := utils.GroupBy(approved, func(e models.TimeEntry) string {
		return e.WbsCode
	})

	report := BudgetReport{Items: make([]SubtaskUtilization, 0, len(items))}
	for _, item := range items {
		var hours, cost float64
		for _, e := range byCode[item.WbsCode] {
			rate, ok := ratesByEmployee[e.EmployeeID]
			if !ok || rate <= 0 {
				rate = DefaultHourlyRate
			}
			hours += e.Hours
			cost += e.Hours * rate
		}

		percent := utilizationPercent(cost, item.BudgetAmount)
		report.Items = append(report.Items, SubtaskUtilization{
			WbsCode:            item.WbsCode,
			SubtaskNumber:      item.SubtaskNumber,
			SubtaskDescription: item.SubtaskDescription,
			TaskDescription:    item.TaskDescription,
			ProjectName:        item.ProjectName,
			BudgetAmount:       item.BudgetAmount,
			TotalHours:         hours,
			TotalCost:          cost,
			UtilizationPercent: percent,
			Status:             UtilizationStatus(percent),
		})

		report.TotalBudget += item.BudgetAmount
		report.TotalSpent += cost
	}

	// Highest-risk leaves first.
	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[i].UtilizationPercent > report.Items[j].UtilizationPercent
	})

	report.OverallUtilization = utilizationPercent(report.TotalSpent, report.TotalBudget)
	report.OverallStatus = UtilizationStatus(report.OverallUtilization)
	return report
}

// BillingRates loads the employee→rate map AnalyzeBudget consumes.
func BillingRates(employees []models.Employee) map[string]float64 {
	rates := make(map[string]float64, len(employees))
	for _, emp := range employees {
		rates[emp.ID] = emp.DefaultBillingRate
	}
	return rates
}
