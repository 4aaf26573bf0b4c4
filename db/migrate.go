package db

import (
	"github.com/caregivers-platform/backend/logger"
	"github.com/caregivers-platform/backend/models"
)

// jobApplicationsViewDDL defines the standing join of applications with
// their job, applicant caregiver, and user records.
const jobApplicationsViewDDL = `
CREATE OR REPLACE VIEW job_applications_view AS
SELECT
    ja.job_id,
    j.required_caregiving_type,
    j.other_requirements,
    j.date_posted,
    ja.caregiver_user_id,
    u.given_name || ' ' || u.surname AS applicant_name,
    c.caregiving_type,
    c.hourly_rate,
    ja.date_applied
FROM job_applications ja
JOIN jobs j ON ja.job_id = j.job_id
JOIN caregivers c ON ja.caregiver_user_id = c.caregiver_user_id
JOIN users u ON c.caregiver_user_id = u.user_id`

// Migrate creates the schema and the read view. Run only when explicitly
// requested (the -migrate flag); Init alone never touches the schema.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Caregiver{},
		&models.Member{},
		&models.Address{},
		&models.Job{},
		&models.JobApplication{},
		&models.Appointment{},
	)
	if err != nil {
		logger.Log.Fatalw("failed to run migrations", "error", err)
	}

	if err := DB.Exec(jobApplicationsViewDDL).Error; err != nil {
		logger.Log.Fatalw("failed to create job_applications_view", "error", err)
	}

	logger.Log.Info("migrations applied")
}
