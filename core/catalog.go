package core

import (
	"errors"
	"fmt"
	"sort"

	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/utils"
	"gorm.io/gorm"
)

// GetBudgetItemsAdmin returns the full catalog including financial fields.
// Admin callers only.
func GetBudgetItemsAdmin(db *gorm.DB) ([]models.BudgetItem, error) {
	var items []models.BudgetItem
	err := db.Order("project_number, task_number, subtask_number").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetBudgetItemsEmployee returns the catalog with budget_amount and
// dmf_budget_amount zeroed. This is an authorization boundary: the redaction
// happens here, before anything is serialized, never in the client.
func GetBudgetItemsEmployee(db *gorm.DB) ([]models.BudgetItem, error) {
	items, err := GetBudgetItemsAdmin(db)
	if err != nil {
		return nil, err
	}
	return RedactFinancials(items), nil
}

// GetBudgetItems dispatches on role. Any role other than admin gets the
// redacted catalog.
func GetBudgetItems(db *gorm.DB, role string) ([]models.BudgetItem, error) {
	if role == models.RoleAdmin {
		return GetBudgetItemsAdmin(db)
	}
	return GetBudgetItemsEmployee(db)
}

// RedactFinancials zeroes the admin-only fields on a copy of items.
func RedactFinancials(items []models.BudgetItem) []models.BudgetItem {
	return utils.Map(items, func(item models.BudgetItem) models.BudgetItem {
		item.BudgetAmount = 0
		item.DmfBudgetAmount = 0
		return item
	})
}

// FindBudgetItem looks up a catalog row by exact wbs_code.
func FindBudgetItem(db *gorm.DB, wbsCode string) (*models.BudgetItem, error) {
	var item models.BudgetItem
	err := db.Where("wbs_code = ?", wbsCode).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "budget item", Key: wbsCode}
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ProjectOption is one row of the project picker. A project number carrying
// several contracts ("Original", "CA1", ...) collapses to a single row; the
// contract shown is whichever row came first. The model does not reconcile
// change-order phases into a richer structure.
type ProjectOption struct {
	ProjectNumber int    `json:"projectNumber"`
	ProjectName   string `json:"projectName"`
	Contract      string `json:"contract"`
}

// TaskOption is one row of the task picker for a chosen project.
type TaskOption struct {
	ProjectNumber   int     `json:"projectNumber"`
	TaskNumber      int     `json:"taskNumber"`
	TaskDescription string  `json:"taskDescription"`
	TaskUnit        *string `json:"taskUnit"`
}

// UniqueProjects deduplicates the catalog by project_number, ascending.
func UniqueProjects(items []models.BudgetItem) []ProjectOption {
	seen := map[int]bool{}
	var projects []ProjectOption
	for _, item := range items {
		if seen[item.ProjectNumber] {
			continue
		}
		seen[item.ProjectNumber] = true
		projects = append(projects, ProjectOption{
			ProjectNumber: item.ProjectNumber,
			ProjectName:   item.ProjectName,
			Contract:      item.Contract,
		})
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].ProjectNumber < projects[j].ProjectNumber
	})
	return projects
}

// TasksForProject deduplicates by (project_number, task_number), ascending by
// task number. The sort is numeric: task 10 comes after task 9.
func TasksForProject(items []models.BudgetItem, projectNumber int) []TaskOption {
	seen := map[int]bool{}
	var tasks []TaskOption
	for _, item := range items {
		if item.ProjectNumber != projectNumber || seen[item.TaskNumber] {
			continue
		}
		seen[item.TaskNumber] = true
		tasks = append(tasks, TaskOption{
			ProjectNumber:   item.ProjectNumber,
			TaskNumber:      item.TaskNumber,
			TaskDescription: item.TaskDescription,
			TaskUnit:        item.TaskUnit,
		})
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].TaskNumber < tasks[j].TaskNumber
	})
	return tasks
}

// SubtasksForTask returns the catalog rows under (project, task) that carry a
// subtask number, ascending numerically.
func SubtasksForTask(items []models.BudgetItem, projectNumber, taskNumber int) []models.BudgetItem {
	subtasks := utils.Filter(items, func(item models.BudgetItem) bool {
		return item.ProjectNumber == projectNumber &&
			item.TaskNumber == taskNumber &&
			item.SubtaskNumber != nil
	})
	sort.Slice(subtasks, func(i, j int) bool {
		return *subtasks[i].SubtaskNumber < *subtasks[j].SubtaskNumber
	})
	return subtasks
}

// ResolveWbsCode maps a (project, task, subtask) path onto its catalog row's
// wbs_code. The match is exact on all three keys: a nil subtask matches only
// rows whose subtask_number is null (a task-level bucket), never the lowest
// subtask. WBS codes are never reconstructed by string formatting.
func ResolveWbsCode(items []models.BudgetItem, projectNumber, taskNumber int, subtaskNumber *float64) (string, error) {
	for _, item := range items {
		if item.ProjectNumber != projectNumber || item.TaskNumber != taskNumber {
			continue
		}
		if subtaskNumber == nil {
			if item.SubtaskNumber == nil {
				return item.WbsCode, nil
			}
			continue
		}
		if item.SubtaskNumber != nil && *item.SubtaskNumber == *subtaskNumber {
			return item.WbsCode, nil
		}
	}
	key := fmt.Sprintf("%d-%d", projectNumber, taskNumber)
	if subtaskNumber != nil {
		key = fmt.Sprintf("%s.%s", key, utils.Format(subtaskNumber))
	}
	return "", &NotFoundError{Resource: "wbs path", Key: key}
}
