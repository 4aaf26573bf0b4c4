package models

import "github.com/shopspring/decimal"

// JobApplicationRow is one row of job_applications_view, the standing join of
// applications with their job, applicant, and user records. Read-only.
type JobApplicationRow struct {
	JobID                  uint            `json:"job_id"`
	RequiredCaregivingType CaregivingType  `json:"required_caregiving_type"`
	OtherRequirements      string          `json:"other_requirements"`
	DatePosted             Date            `json:"date_posted"`
	CaregiverUserID        uint            `json:"caregiver_user_id"`
	ApplicantName          string          `json:"applicant_name"`
	CaregivingType         CaregivingType  `json:"caregiving_type"`
	HourlyRate             decimal.Decimal `json:"hourly_rate"`
	DateApplied            Date            `json:"date_applied"`
}

func (JobApplicationRow) TableName() string { return "job_applications_view" }
