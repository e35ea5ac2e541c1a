package core

import (
	"errors"
	"time"

	"dmfengineering.com/timesheet/core/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTimeEntry is the payload for creating a draft entry.
type NewTimeEntry struct {
	WbsCode     string
	EntryDate   string
	Hours       float64
	Description *string
}

// TimeEntryUpdate carries the owner-editable fields. The WBS code and owner
// are immutable after creation; logging different work means a different
// entry.
type TimeEntryUpdate struct {
	EntryDate   *string
	Hours       *float64
	Description *string
}

// CreateTimeEntry validates the payload against the catalog and inserts a
// draft owned by the session employee.
func CreateTimeEntry(db *gorm.DB, sess Session, in NewTimeEntry) (*models.TimeEntry, error) {
	if err := ValidateHours(in.Hours); err != nil {
		return nil, err
	}
	if err := ValidateEntryDate(in.EntryDate); err != nil {
		return nil, err
	}
	if _, err := FindBudgetItem(db, in.WbsCode); err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, Validationf("unknown wbs code %q", in.WbsCode)
		}
		return nil, err
	}

	entry := models.TimeEntry{
		ID:          uuid.New().String(),
		EmployeeID:  sess.EmployeeID(),
		WbsCode:     in.WbsCode,
		EntryDate:   in.EntryDate,
		Hours:       in.Hours,
		Description: in.Description,
		Status:      models.StatusDraft,
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateTimeEntry edits a draft or rejected entry owned by the session
// employee. Editing a rejected entry re-enters draft and clears the review
// metadata. The status gate runs inside the UPDATE itself so a concurrent
// review cannot slip between a read and a write.
func UpdateTimeEntry(db *gorm.DB, sess Session, entryID string, in TimeEntryUpdate) (*models.TimeEntry, error) {
	updates := ResetToDraft()
	if in.EntryDate != nil {
		if err := ValidateEntryDate(*in.EntryDate); err != nil {
			return nil, err
		}
		updates["entry_date"] = *in.EntryDate
	}
	if in.Hours != nil {
		if err := ValidateHours(*in.Hours); err != nil {
			return nil, err
		}
		updates["hours"] = *in.Hours
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}

	result := db.Model(&models.TimeEntry{}).
		Where("id = ? AND employee_id = ? AND status IN ?", entryID, sess.EmployeeID(), editableStatuses).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, classifyGateFailure(db, sess, entryID)
	}

	return GetTimeEntry(db, entryID)
}

// DeleteTimeEntry removes a draft or rejected entry owned by the session
// employee, with the same conditional gate as UpdateTimeEntry.
func DeleteTimeEntry(db *gorm.DB, sess Session, entryID string) error {
	result := db.
		Where("id = ? AND employee_id = ? AND status IN ?", entryID, sess.EmployeeID(), editableStatuses).
		Delete(&models.TimeEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return classifyGateFailure(db, sess, entryID)
	}
	return nil
}

// classifyGateFailure explains a conditional write that matched no rows.
func classifyGateFailure(db *gorm.DB, sess Session, entryID string) error {
	entry, err := GetTimeEntry(db, entryID)
	if err != nil {
		return err
	}
	if entry.EmployeeID != sess.EmployeeID() {
		return Permissionf("time entry %s belongs to another employee", entryID)
	}
	return Permissionf("time entry %s is %s and can no longer be edited", entryID, entry.Status)
}

// GetTimeEntry fetches a single entry by id.
func GetTimeEntry(db *gorm.DB, entryID string) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := db.Where("id = ?", entryID).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "time entry", Key: entryID}
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListTimeEntries returns the session employee's entries, newest date first.
func ListTimeEntries(db *gorm.DB, sess Session) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := db.
		Where("employee_id = ?", sess.EmployeeID()).
		Order("entry_date DESC, created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListSubmittedEntries returns the admin review queue, oldest date first.
func ListSubmittedEntries(db *gorm.DB, sess Session) ([]models.TimeEntry, error) {
	if !sess.IsAdmin() {
		return nil, Permissionf("only admins can list submitted entries")
	}
	var entries []models.TimeEntry
	err := db.
		Where("status = ?", models.StatusSubmitted).
		Order("entry_date, created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// SubmitTimesheet moves every draft the employee holds on date to submitted
// in one conditional bulk UPDATE. Zero matched rows is a no-op, not an error,
// which makes repeated submits idempotent.
func SubmitTimesheet(db *gorm.DB, sess Session, date string) (int64, error) {
	if err := ValidateEntryDate(date); err != nil {
		return 0, err
	}
	result := db.Model(&models.TimeEntry{}).
		Where("employee_id = ? AND entry_date = ? AND status = ?",
			sess.EmployeeID(), date, models.StatusDraft).
		Updates(map[string]any{
			"status":       models.StatusSubmitted,
			"submitted_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// SubmitWeek is SubmitTimesheet across an inclusive date range, used by the
// weekly view. Same idempotence rule.
func SubmitWeek(db *gorm.DB, sess Session, weekStart, weekEnd string) (int64, error) {
	if err := ValidateEntryDate(weekStart); err != nil {
		return 0, err
	}
	if err := ValidateEntryDate(weekEnd); err != nil {
		return 0, err
	}
	if weekEnd < weekStart {
		return 0, Validationf("week end %s precedes week start %s", weekEnd, weekStart)
	}
	result := db.Model(&models.TimeEntry{}).
		Where("employee_id = ? AND entry_date BETWEEN ? AND ? AND status = ?",
			sess.EmployeeID(), weekStart, weekEnd, models.StatusDraft).
		Updates(map[string]any{
			"status":       models.StatusSubmitted,
			"submitted_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// ReviewTimeEntry approves or rejects a submitted entry. Admin only. The
// submitted-status check is part of the UPDATE, so two admins racing on the
// same entry cannot both win.
func ReviewTimeEntry(db *gorm.DB, sess Session, entryID, decision string, notes *string) (*models.TimeEntry, error) {
	if !sess.IsAdmin() {
		return nil, Permissionf("only admins can review time entries")
	}
	if !ValidReviewDecision(decision) {
		return nil, Validationf("invalid review decision %q", decision)
	}

	updates := map[string]any{
		"status":      decision,
		"reviewed_at": time.Now(),
		"reviewed_by": sess.EmployeeID(),
	}
	if notes != nil {
		updates["review_notes"] = *notes
	}

	result := db.Model(&models.TimeEntry{}).
		Where("id = ? AND status = ?", entryID, models.StatusSubmitted).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		entry, err := GetTimeEntry(db, entryID)
		if err != nil {
			return nil, err
		}
		return nil, Permissionf("time entry %s is %s, only submitted entries can be reviewed", entryID, entry.Status)
	}

	return GetTimeEntry(db, entryID)
}
