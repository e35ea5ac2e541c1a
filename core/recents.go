package core

import (
	"sort"
	"time"

	"dmfengineering.com/timesheet/core/models"
)

// RecentEntriesLimit caps the quick-pick list.
const RecentEntriesLimit = 8

// RecentEntry is a previously used WBS code annotated with catalog display
// fields for the quick-pick UI.
type RecentEntry struct {
	WbsCode            string    `json:"wbsCode"`
	ProjectName        string    `json:"projectName"`
	TaskDescription    string    `json:"taskDescription"`
	SubtaskDescription *string   `json:"subtaskDescription"`
	Description        *string   `json:"description"`
	LastUsed           time.Time `json:"lastUsed"`
}

// RecentWbsCodes derives the employee's most recently used distinct WBS
// codes. Scanning stops once limit distinct codes have been found, not after
// limit entries. Codes that no longer exist in the catalog are skipped.
func RecentWbsCodes(entries []models.TimeEntry, items []models.BudgetItem, limit int) []RecentEntry {
	if limit <= 0 {
		limit = RecentEntriesLimit
	}

	byCode := make(map[string]models.BudgetItem, len(items))
	for _, item := range items {
		byCode[item.WbsCode] = item
	}

	ordered := make([]models.TimeEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	seen := map[string]bool{}
	var recents []RecentEntry
	for _, entry := range ordered {
		if len(recents) >= limit {
			break
		}
		if seen[entry.WbsCode] {
			continue
		}
		seen[entry.WbsCode] = true

		item, ok := byCode[entry.WbsCode]
		if !ok {
			continue
		}
		recents = append(recents, RecentEntry{
			WbsCode:            entry.WbsCode,
			ProjectName:        item.ProjectName,
			TaskDescription:    item.TaskDescription,
			SubtaskDescription: item.SubtaskDescription,
			Description:        entry.Description,
			LastUsed:           entry.CreatedAt,
		})
	}
	return recents
}
