package core

import (
	"testing"

	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []models.BudgetItem {
	return []models.BudgetItem{
		{
			WbsCode: "25002-01.1", ProjectNumber: 25002, ProjectName: "Riverside Plant",
			Contract: "Original", TaskNumber: 1, TaskDescription: "Structural Design",
			SubtaskNumber: utils.Ptr(1.0), SubtaskDescription: utils.Ptr("Foundations"),
			FeeStructure: "Lump Sum", BudgetAmount: 1000, DmfBudgetAmount: 800,
		},
		{
			WbsCode: "25002-01.2", ProjectNumber: 25002, ProjectName: "Riverside Plant",
			Contract: "Original", TaskNumber: 1, TaskDescription: "Structural Design",
			SubtaskNumber: utils.Ptr(2.0), SubtaskDescription: utils.Ptr("Columns"),
			FeeStructure: "Lump Sum", BudgetAmount: 2000, DmfBudgetAmount: 1500,
		},
		{
			// Task-level bucket: no subtask breakdown.
			WbsCode: "25002-02", ProjectNumber: 25002, ProjectName: "Riverside Plant",
			Contract: "CA1", TaskNumber: 2, TaskDescription: "Site Inspections",
			FeeStructure: "Hourly", BudgetAmount: 500,
		},
		{
			WbsCode: "25002-11.1", ProjectNumber: 25002, ProjectName: "Riverside Plant",
			Contract: "Original", TaskNumber: 11, TaskDescription: "Commissioning",
			SubtaskNumber: utils.Ptr(1.0), FeeStructure: "Lump Sum", BudgetAmount: 750,
		},
		{
			WbsCode: "24117-01.1", ProjectNumber: 24117, ProjectName: "Harbour Upgrade",
			Contract: "Original", TaskNumber: 1, TaskDescription: "Survey",
			SubtaskNumber: utils.Ptr(1.0), FeeStructure: "Lump Sum", BudgetAmount: 300,
		},
	}
}

func TestUniqueProjects(t *testing.T) {
	projects := UniqueProjects(catalogFixture())

	require.Len(t, projects, 2)
	// Numeric ascending.
	assert.Equal(t, 24117, projects[0].ProjectNumber)
	assert.Equal(t, 25002, projects[1].ProjectNumber)
	// Multiple contracts collapse to the first row seen.
	assert.Equal(t, "Original", projects[1].Contract)
}

func TestTasksForProject(t *testing.T) {
	tasks := TasksForProject(catalogFixture(), 25002)

	require.Len(t, tasks, 3)
	assert.Equal(t, 1, tasks[0].TaskNumber)
	assert.Equal(t, 2, tasks[1].TaskNumber)
	assert.Equal(t, 11, tasks[2].TaskNumber)

	assert.Empty(t, TasksForProject(catalogFixture(), 99999))
}

func TestSubtasksForTask(t *testing.T) {
	subtasks := SubtasksForTask(catalogFixture(), 25002, 1)

	require.Len(t, subtasks, 2)
	assert.Equal(t, "25002-01.1", subtasks[0].WbsCode)
	assert.Equal(t, "25002-01.2", subtasks[1].WbsCode)

	// Task-level bucket has no subtask rows.
	assert.Empty(t, SubtasksForTask(catalogFixture(), 25002, 2))
}

func TestResolveWbsCode(t *testing.T) {
	items := catalogFixture()

	// Every catalog row resolves back to its own code.
	for _, item := range items {
		code, err := ResolveWbsCode(items, item.ProjectNumber, item.TaskNumber, item.SubtaskNumber)
		require.NoError(t, err)
		assert.Equal(t, item.WbsCode, code)
	}
}

func TestResolveWbsCodeNilSubtask(t *testing.T) {
	items := catalogFixture()

	// Nil subtask matches only the task-level bucket.
	code, err := ResolveWbsCode(items, 25002, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "25002-02", code)

	// Nil subtask must not fall back to the lowest subtask of a broken-down task.
	_, err = ResolveWbsCode(items, 25002, 1, nil)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestResolveWbsCodeExactMatch(t *testing.T) {
	items := catalogFixture()

	// Task 1 and task 11 must not collide.
	code, err := ResolveWbsCode(items, 25002, 11, utils.Ptr(1.0))
	require.NoError(t, err)
	assert.Equal(t, "25002-11.1", code)

	var nf *NotFoundError
	_, err = ResolveWbsCode(items, 25002, 1, utils.Ptr(3.0))
	assert.ErrorAs(t, err, &nf)

	_, err = ResolveWbsCode(items, 11111, 1, utils.Ptr(1.0))
	assert.ErrorAs(t, err, &nf)
}

func TestRedactFinancials(t *testing.T) {
	items := catalogFixture()
	redacted := RedactFinancials(items)

	require.Len(t, redacted, len(items))
	for _, item := range redacted {
		assert.Zero(t, item.BudgetAmount)
		assert.Zero(t, item.DmfBudgetAmount)
	}
	// Everything else survives untouched.
	assert.Equal(t, items[0].WbsCode, redacted[0].WbsCode)
	assert.Equal(t, items[0].SubtaskDescription, redacted[0].SubtaskDescription)
	// The source slice is not mutated.
	assert.Equal(t, 1000.0, items[0].BudgetAmount)
}
