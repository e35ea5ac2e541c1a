package core

import (
	"time"

	"dmfengineering.com/timesheet/core/models"
)

// Review decisions an admin can take on a submitted entry.
const (
	DecisionApproved = models.StatusApproved
	DecisionRejected = models.StatusRejected
)

const entryDateLayout = "2006-01-02"

// IsEditable reports whether the owner may update or delete an entry in the
// given status. Submitted and approved entries are locked; approved is
// terminal.
func IsEditable(status string) bool {
	return status == models.StatusDraft || status == models.StatusRejected
}

// IsReviewable reports whether an admin may approve or reject an entry in
// the given status.
func IsReviewable(status string) bool {
	return status == models.StatusSubmitted
}

// ValidReviewDecision reports whether decision is a legal review outcome.
func ValidReviewDecision(decision string) bool {
	return decision == DecisionApproved || decision == DecisionRejected
}

// ValidateHours rejects non-positive hours. Half-hour increments are a
// convention, not a rule, so they are not enforced here.
func ValidateHours(hours float64) error {
	if hours <= 0 {
		return Validationf("hours must be positive, got %v", hours)
	}
	return nil
}

// ValidateEntryDate checks a yyyy-MM-dd calendar date. The parsed value is
// discarded; entry dates are stored and compared as strings so they never
// pass through a timezone conversion.
func ValidateEntryDate(date string) error {
	if _, err := time.Parse(entryDateLayout, date); err != nil {
		return Validationf("invalid entry date %q, expected yyyy-MM-dd", date)
	}
	return nil
}

// editableStatuses is the status gate used by conditional UPDATE/DELETE
// statements. Keeping it next to IsEditable so the SQL gate and the pure
// predicate cannot drift apart.
var editableStatuses = []string{models.StatusDraft, models.StatusRejected}

// ResetToDraft builds the column assignments applied when an owner edits an
// entry: it re-enters draft and any prior review outcome is cleared, so a
// corrected rejected entry carries no stale reviewer metadata.
func ResetToDraft() map[string]any {
	return map[string]any{
		"status":       models.StatusDraft,
		"reviewed_at":  nil,
		"reviewed_by":  nil,
		"review_notes": nil,
	}
}
