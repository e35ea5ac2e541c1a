package core

import (
	"testing"

	"dmfengineering.com/timesheet/core/models"
	"github.com/stretchr/testify/assert"
)

func TestIsEditable(t *testing.T) {
	tests := []struct {
		status   string
		editable bool
	}{
		{models.StatusDraft, true},
		{models.StatusRejected, true},
		{models.StatusSubmitted, false},
		{models.StatusApproved, false},
		{"", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.editable, IsEditable(tt.status))
		})
	}
}

func TestIsReviewable(t *testing.T) {
	assert.True(t, IsReviewable(models.StatusSubmitted))
	assert.False(t, IsReviewable(models.StatusDraft))
	assert.False(t, IsReviewable(models.StatusApproved))
	assert.False(t, IsReviewable(models.StatusRejected))
}

func TestValidReviewDecision(t *testing.T) {
	assert.True(t, ValidReviewDecision(DecisionApproved))
	assert.True(t, ValidReviewDecision(DecisionRejected))
	assert.False(t, ValidReviewDecision(models.StatusDraft))
	assert.False(t, ValidReviewDecision(models.StatusSubmitted))
	assert.False(t, ValidReviewDecision(""))
}

func TestResetToDraft(t *testing.T) {
	updates := ResetToDraft()

	assert.Equal(t, models.StatusDraft, updates["status"])
	for _, column := range []string{"reviewed_at", "reviewed_by", "review_notes"} {
		t.Run(column, func(t *testing.T) {
			value, ok := updates[column]
			assert.True(t, ok, "column must be cleared, not left untouched")
			assert.Nil(t, value)
		})
	}
}

func TestValidateHours(t *testing.T) {
	assert.NoError(t, ValidateHours(0.5))
	assert.NoError(t, ValidateHours(8))

	var ve *ValidationError
	err := ValidateHours(0)
	assert.ErrorAs(t, err, &ve)

	err = ValidateHours(-1)
	assert.ErrorAs(t, err, &ve)
}

func TestValidateEntryDate(t *testing.T) {
	assert.NoError(t, ValidateEntryDate("2024-01-15"))
	assert.NoError(t, ValidateEntryDate("2025-12-31"))

	var ve *ValidationError
	assert.ErrorAs(t, ValidateEntryDate("15/01/2024"), &ve)
	assert.ErrorAs(t, ValidateEntryDate("2024-13-01"), &ve)
	assert.ErrorAs(t, ValidateEntryDate(""), &ve)
	assert.ErrorAs(t, ValidateEntryDate("2024-01-15T00:00:00Z"), &ve)
}
