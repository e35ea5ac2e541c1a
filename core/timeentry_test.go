package core

import (
	"regexp"
	"testing"

	"dmfengineering.com/timesheet/core/models"
	"dmfengineering.com/timesheet/utils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestSubmitTimesheetIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	sess := Session{Employee: models.Employee{ID: "emp-1"}}

	gate := ".*" + regexp.QuoteMeta("WHERE employee_id = ? AND entry_date = ? AND status = ?")

	mock.ExpectExec("UPDATE `time_entries` SET" + gate).
		WillReturnResult(sqlmock.NewResult(0, 2))
	count, err := SubmitTimesheet(db, sess, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A repeat submit finds no drafts left: zero transitions, no error.
	mock.ExpectExec("UPDATE `time_entries` SET" + gate).
		WillReturnResult(sqlmock.NewResult(0, 0))
	count, err = SubmitTimesheet(db, sess, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitWeekNoDrafts(t *testing.T) {
	db, mock := newMockDB(t)
	sess := Session{Employee: models.Employee{ID: "emp-1"}}

	gate := ".*" + regexp.QuoteMeta("WHERE employee_id = ? AND entry_date BETWEEN ? AND ? AND status = ?")
	mock.ExpectExec("UPDATE `time_entries` SET" + gate).
		WillReturnResult(sqlmock.NewResult(0, 0))

	count, err := SubmitWeek(db, sess, "2024-01-15", "2024-01-21")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitWeekInvertedRange(t *testing.T) {
	db, mock := newMockDB(t)
	sess := Session{Employee: models.Employee{ID: "emp-1"}}

	_, err := SubmitWeek(db, sess, "2024-01-21", "2024-01-15")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NoError(t, mock.ExpectationsWereMet(), "an invalid range must not reach the database")
}

func TestUpdateTimeEntryGateOnForeignEntry(t *testing.T) {
	db, mock := newMockDB(t)
	sess := Session{Employee: models.Employee{ID: "emp-1"}}

	// The conditional update matches nothing, the follow-up read shows the
	// entry belongs to someone else.
	mock.ExpectExec(".*" + regexp.QuoteMeta("WHERE id = ? AND employee_id = ? AND status IN (?,?)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `time_entries`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "status"}).
			AddRow("entry-1", "emp-2", models.StatusDraft))

	_, err := UpdateTimeEntry(db, sess, "entry-1", TimeEntryUpdate{Hours: utils.Ptr(3.0)})

	var pe *PermissionError
	require.ErrorAs(t, err, &pe)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTimeEntryGateOnLockedStatus(t *testing.T) {
	db, mock := newMockDB(t)
	sess := Session{Employee: models.Employee{ID: "emp-1"}}

	mock.ExpectExec(".*" + regexp.QuoteMeta("WHERE id = ? AND employee_id = ? AND status IN (?,?)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT \\* FROM `time_entries`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "status"}).
			AddRow("entry-1", "emp-1", models.StatusApproved))

	_, err := UpdateTimeEntry(db, sess, "entry-1", TimeEntryUpdate{Hours: utils.Ptr(3.0)})

	var pe *PermissionError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), models.StatusApproved)
	require.NoError(t, mock.ExpectationsWereMet())
}
