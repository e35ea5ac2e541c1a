package main

import (
	"fmt"

	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/utils"
)

// DraftSummary is one employee's lingering drafts for the reminder window.
type DraftSummary struct {
	EmployeeID string
	Count      int
	TotalHours float64
}

// SummarizeDrafts groups draft entries by employee. Entries in any other
// status are ignored; they have already been submitted.
func SummarizeDrafts(entries []models.TimeEntry) map[string]DraftSummary {
	drafts := utils.Filter(entries, func(e models.TimeEntry) bool {
		return e.Status == models.StatusDraft
	})

	summaries := make(map[string]DraftSummary)
	for _, entry := range drafts {
		summary := summaries[entry.EmployeeID]
		summary.EmployeeID = entry.EmployeeID
		summary.Count++
		summary.TotalHours += entry.Hours
		summaries[entry.EmployeeID] = summary
	}
	return summaries
}

// ReminderMessage renders the reminder body for one employee.
func ReminderMessage(summary DraftSummary, weekStart, weekEnd string) string {
	return fmt.Sprintf(
		"You have %d unsubmitted time entries (%.1f hours) for the week %s to %s. Please review and submit them.",
		summary.Count, summary.TotalHours, weekStart, weekEnd)
}
