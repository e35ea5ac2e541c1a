package core

import (
	"testing"

	"dmfengineering.com/timesheet/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilizationStatus(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{"zero", 0, BandUnderBudget},
		{"well under", 50, BandUnderBudget},
		{"boundary 75 is still under", 75, BandUnderBudget},
		{"just over 75", 75.1, BandOnTrack},
		{"boundary 90 is still on track", 90, BandOnTrack},
		{"just over 90", 90.1, BandOverBudget},
		{"blown budget", 150, BandOverBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UtilizationStatus(tt.percent))
		})
	}
}

func TestAnalyzeBudgetBanding(t *testing.T) {
	items := []models.BudgetItem{
		{WbsCode: "25002-01.1", BudgetAmount: 1000},
	}
	rates := map[string]float64{"emp-1": 1} // $1/hour keeps spend == hours

	entry := func(hours float64) []models.TimeEntry {
		return []models.TimeEntry{{
			WbsCode: "25002-01.1", EmployeeID: "emp-1",
			Hours: hours, Status: models.StatusApproved,
		}}
	}

	// $750 of $1000 is exactly 75% and still under-budget.
	report := AnalyzeBudget(items, entry(750), rates)
	assert.Equal(t, BandUnderBudget, report.Items[0].Status)

	report = AnalyzeBudget(items, entry(751), rates)
	assert.Equal(t, BandOnTrack, report.Items[0].Status)

	report = AnalyzeBudget(items, entry(901), rates)
	assert.Equal(t, BandOverBudget, report.Items[0].Status)
}

func TestAnalyzeBudgetZeroBudget(t *testing.T) {
	items := []models.BudgetItem{{WbsCode: "25002-01.1", BudgetAmount: 0}}
	entries := []models.TimeEntry{{
		WbsCode: "25002-01.1", EmployeeID: "emp-1",
		Hours: 10, Status: models.StatusApproved,
	}}

	report := AnalyzeBudget(items, entries, map[string]float64{"emp-1": 100})

	assert.Equal(t, 0.0, report.Items[0].UtilizationPercent)
	assert.Equal(t, BandUnderBudget, report.Items[0].Status)
	assert.Equal(t, 1000.0, report.Items[0].TotalCost)
}

func TestAnalyzeBudgetApprovedOnly(t *testing.T) {
	items := []models.BudgetItem{{WbsCode: "25002-01.1", BudgetAmount: 1000}}
	entries := []models.TimeEntry{
		{WbsCode: "25002-01.1", EmployeeID: "emp-1", Hours: 4, Status: models.StatusApproved},
		{WbsCode: "25002-01.1", EmployeeID: "emp-1", Hours: 8, Status: models.StatusDraft},
		{WbsCode: "25002-01.1", EmployeeID: "emp-1", Hours: 8, Status: models.StatusSubmitted},
		{WbsCode: "25002-01.1", EmployeeID: "emp-1", Hours: 8, Status: models.StatusRejected},
	}

	report := AnalyzeBudget(items, entries, map[string]float64{"emp-1": 100})

	assert.Equal(t, 4.0, report.Items[0].TotalHours)
	assert.Equal(t, 400.0, report.Items[0].TotalCost)
}

func TestAnalyzeBudgetDefaultRate(t *testing.T) {
	items := []models.BudgetItem{{WbsCode: "25002-01.1", BudgetAmount: 1000}}
	entries := []models.TimeEntry{
		{WbsCode: "25002-01.1", EmployeeID: "no-rate", Hours: 2, Status: models.StatusApproved},
	}

	report := AnalyzeBudget(items, entries, nil)

	assert.Equal(t, 2*DefaultHourlyRate, report.Items[0].TotalCost)
}

func TestAnalyzeBudgetSortAndTotals(t *testing.T) {
	items := []models.BudgetItem{
		{WbsCode: "25002-01.1", BudgetAmount: 1000},
		{WbsCode: "25002-01.2", BudgetAmount: 1000},
		{WbsCode: "25002-01.3", BudgetAmount: 1000},
	}
	entries := []models.TimeEntry{
		{WbsCode: "25002-01.1", EmployeeID: "emp-1", Hours: 200, Status: models.StatusApproved},
		{WbsCode: "25002-01.2", EmployeeID: "emp-1", Hours: 950, Status: models.StatusApproved},
		{WbsCode: "25002-01.3", EmployeeID: "emp-1", Hours: 800, Status: models.StatusApproved},
	}
	rates := map[string]float64{"emp-1": 1}

	report := AnalyzeBudget(items, entries, rates)

	require.Len(t, report.Items, 3)
	// Utilization descending: highest risk first.
	assert.Equal(t, "25002-01.2", report.Items[0].WbsCode)
	assert.Equal(t, "25002-01.3", report.Items[1].WbsCode)
	assert.Equal(t, "25002-01.1", report.Items[2].WbsCode)

	assert.Equal(t, 3000.0, report.TotalBudget)
	assert.Equal(t, 1950.0, report.TotalSpent)
	assert.Equal(t, 65.0, report.OverallUtilization)
	assert.Equal(t, BandUnderBudget, report.OverallStatus)
}
