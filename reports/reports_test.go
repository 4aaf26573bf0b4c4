package reports

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockReports(t *testing.T) (*Reports, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return New(db), mock
}

func TestAcceptedAppointments(t *testing.T) {
	r, mock := newMockReports(t)

	mock.ExpectQuery(`JOIN users cu ON cu\.user_id = appointments\.caregiver_user_id`).
		WithArgs("accepted").
		WillReturnRows(sqlmock.NewRows([]string{
			"appointment_id", "caregiver_name", "member_name",
			"appointment_date", "appointment_time", "work_hours",
		}).
			AddRow(1, "Arman Armanov", "Bella Brown", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "10:00", "3").
			AddRow(2, "Kate Brown", "Bella Brown", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), "14:30", "6"))

	rows, err := r.AcceptedAppointments()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Arman Armanov", rows[0].CaregiverName)
	assert.Equal(t, "2024-03-15", rows[0].AppointmentDate.String())
	assert.Equal(t, "6", rows[1].WorkHours.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationsViewOrder(t *testing.T) {
	r, mock := newMockReports(t)

	mock.ExpectQuery(`SELECT \* FROM "job_applications_view" ORDER BY job_id, date_applied`).
		WillReturnRows(sqlmock.NewRows([]string{
			"job_id", "required_caregiving_type", "other_requirements", "date_posted",
			"caregiver_user_id", "applicant_name", "caregiving_type", "hourly_rate", "date_applied",
		}).
			AddRow(1, "babysitter", "Must love dogs", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				3, "Arman Armanov", "babysitter", "8.50", time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)).
			AddRow(1, "babysitter", "Must love dogs", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				5, "Kate Brown", "babysitter", "11.50", time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)))

	rows, err := r.JobApplicationsView()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(1), rows[0].JobID)
	assert.Equal(t, "8.50", rows[0].HourlyRate.StringFixed(2))
	assert.Equal(t, "2024-01-14", rows[1].DateApplied.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalAcceptedWorkHours(t *testing.T) {
	r, mock := newMockReports(t)

	payColumns := []string{"appointment_id", "caregiver_name", "hourly_rate", "work_hours"}
	mock.ExpectQuery(`JOIN caregivers c ON c\.caregiver_user_id = appointments\.caregiver_user_id`).
		WithArgs("accepted").
		WillReturnRows(sqlmock.NewRows(payColumns).
			AddRow(1, "Arman Armanov", "8.50", "3").
			AddRow(2, "Kate Brown", "11.50", "6.5"))

	total, err := r.TotalAcceptedWorkHours()
	require.NoError(t, err)
	assert.Equal(t, "9.50", total.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAverageAcceptedPayEmpty(t *testing.T) {
	r, mock := newMockReports(t)

	mock.ExpectQuery(`FROM "appointments" JOIN caregivers c`).
		WithArgs("accepted").
		WillReturnRows(sqlmock.NewRows([]string{"appointment_id", "caregiver_name", "hourly_rate", "work_hours"}))

	_, ok, err := r.AverageAcceptedPay()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobApplicationCounts(t *testing.T) {
	r, mock := newMockReports(t)

	mock.ExpectQuery(`LEFT JOIN job_applications ja ON ja\.job_id = jobs\.job_id`).
		WillReturnRows(sqlmock.NewRows([]string{"job_id", "member_name", "applicants"}).
			AddRow(1, "Bella Brown", 3).
			AddRow(2, "Carlos Diaz", 0))

	rows, err := r.JobApplicationCounts()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].Applicants)
	assert.Equal(t, int64(0), rows[1].Applicants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobsMatchingRequirements(t *testing.T) {
	r, mock := newMockReports(t)

	mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE other_requirements LIKE \$1 ORDER BY job_id`).
		WithArgs("%soft-spoken%").
		WillReturnRows(sqlmock.NewRows([]string{
			"job_id", "member_user_id", "required_caregiving_type", "other_requirements", "date_posted",
		}).
			AddRow(4, 12, "elderly care", "Looking for a soft-spoken and patient caregiver",
				time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).
			AddRow(9, 15, "elderly care", "Needs a soft-spoken companion for daily walks",
				time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)))

	jobs, err := r.JobsMatchingRequirements("soft-spoken")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, uint(4), jobs[0].JobID)
	assert.Contains(t, jobs[0].OtherRequirements, "soft-spoken")
	assert.Equal(t, "2024-02-20", jobs[1].DatePosted.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembersSeekingElderlyCare(t *testing.T) {
	r, mock := newMockReports(t)

	mock.ExpectQuery(`SELECT DISTINCT members\.member_user_id,[\s\S]*JOIN jobs j ON j\.member_user_id = members\.member_user_id WHERE j\.required_caregiving_type = \$1 AND u\.city = \$2 AND members\.house_rules LIKE \$3`).
		WithArgs("elderly care", "Astana", "%No pets.%").
		WillReturnRows(sqlmock.NewRows([]string{
			"member_user_id", "member_name", "city", "house_rules",
		}).AddRow(14, "Gulnara Serikova", "Astana", "No pets. Quiet hours after 9pm."))

	members, err := r.MembersSeekingElderlyCare("Astana", "No pets.")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, uint(14), members[0].MemberUserID)
	assert.Equal(t, "Gulnara Serikova", members[0].MemberName)
	assert.Equal(t, "Astana", members[0].City)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBabysitterWorkHours(t *testing.T) {
	r, mock := newMockReports(t)

	mock.ExpectQuery(`WHERE c\.caregiving_type = \$1`).
		WithArgs("babysitter").
		WillReturnRows(sqlmock.NewRows([]string{"work_hours"}).AddRow("3").AddRow("4.5"))

	hours, err := r.BabysitterWorkHours()
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, "4.50", hours[1].StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
