package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applicationColumns = []string{"caregiver_user_id", "job_id", "date_applied"}

var jobColumns = []string{
	"job_id", "member_user_id", "required_caregiving_type",
	"other_requirements", "date_posted",
}

func jobRow(jobID, memberID int) *sqlmock.Rows {
	return sqlmock.NewRows(jobColumns).AddRow(
		jobID, memberID, "babysitter", "Must love dogs",
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	)
}

func TestCreateApplication(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "caregivers" WHERE "caregivers"\."caregiver_user_id" = \$1`).
		WillReturnRows(sqlmock.NewRows(caregiverColumns).
			AddRow(3, "", "Male", "babysitter", "8.50"))
	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE "jobs"\."job_id" = \$1`).
		WillReturnRows(jobRow(1, 12))
	mock.ExpectQuery(`SELECT \* FROM "job_applications" WHERE caregiver_user_id = \$1 AND job_id = \$2`).
		WillReturnRows(sqlmock.NewRows(applicationColumns))
	mock.ExpectExec(`INSERT INTO "job_applications"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	a := models.JobApplication{
		CaregiverUserID: 3,
		JobID:           1,
		DateApplied:     models.NewDate(2024, 1, 12),
	}
	require.NoError(t, s.CreateApplication(&a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicationDuplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "caregivers"`).
		WillReturnRows(sqlmock.NewRows(caregiverColumns).
			AddRow(3, "", "Male", "babysitter", "8.50"))
	mock.ExpectQuery(`SELECT \* FROM "jobs"`).
		WillReturnRows(jobRow(1, 12))
	mock.ExpectQuery(`SELECT \* FROM "job_applications"`).
		WillReturnRows(sqlmock.NewRows(applicationColumns).
			AddRow(3, 1, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)))
	mock.ExpectRollback()

	a := models.JobApplication{
		CaregiverUserID: 3,
		JobID:           1,
		DateApplied:     models.NewDate(2024, 1, 13),
	}
	err := s.CreateApplication(&a)
	require.Error(t, err)
	assert.True(t, apperr.IsConstraint(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateApplicationJobNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "caregivers"`).
		WillReturnRows(sqlmock.NewRows(caregiverColumns).
			AddRow(3, "", "Male", "babysitter", "8.50"))
	mock.ExpectQuery(`SELECT \* FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows(jobColumns))
	mock.ExpectRollback()

	a := models.JobApplication{
		CaregiverUserID: 3,
		JobID:           404,
		DateApplied:     models.NewDate(2024, 1, 12),
	}
	err := s.CreateApplication(&a)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApplicationRequiresDate(t *testing.T) {
	s, mock := newMockStore(t)

	_, err := s.UpdateApplication(3, 1, models.Date{})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteApplicationNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "job_applications"`).
		WillReturnRows(sqlmock.NewRows(applicationColumns))
	mock.ExpectRollback()

	err := s.DeleteApplication(3, 404)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
