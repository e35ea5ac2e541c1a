package main

import (
	"testing"

	"dmfengineering.com/timesheet/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDrafts(t *testing.T) {
	entries := []models.TimeEntry{
		{EmployeeID: "emp-1", Status: models.StatusDraft, Hours: 4},
		{EmployeeID: "emp-1", Status: models.StatusDraft, Hours: 3.5},
		{EmployeeID: "emp-1", Status: models.StatusSubmitted, Hours: 8},
		{EmployeeID: "emp-2", Status: models.StatusDraft, Hours: 8},
		{EmployeeID: "emp-3", Status: models.StatusApproved, Hours: 8},
	}

	summaries := SummarizeDrafts(entries)

	require.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries["emp-1"].Count)
	assert.Equal(t, 7.5, summaries["emp-1"].TotalHours)
	assert.Equal(t, 1, summaries["emp-2"].Count)
	assert.NotContains(t, summaries, "emp-3")
}

func TestSummarizeDraftsEmpty(t *testing.T) {
	assert.Empty(t, SummarizeDrafts(nil))
}

func TestReminderMessage(t *testing.T) {
	message := ReminderMessage(DraftSummary{EmployeeID: "emp-1", Count: 3, TotalHours: 12.5}, "2024-01-15", "2024-01-21")

	assert.Contains(t, message, "3 unsubmitted time entries")
	assert.Contains(t, message, "12.5 hours")
	assert.Contains(t, message, "2024-01-15 to 2024-01-21")
}
