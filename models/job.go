package models

import (
	"github.com/caregivers-platform/backend/apperr"
	"gorm.io/gorm"
)

// Job is a care request posted by a Member.
type Job struct {
	JobID                  uint           `json:"job_id" gorm:"column:job_id;primaryKey"`
	MemberUserID           uint           `json:"member_user_id" gorm:"not null"`
	RequiredCaregivingType CaregivingType `json:"required_caregiving_type" gorm:"size:50;not null;check:chk_required_caregiving_type,required_caregiving_type IN ('babysitter','elderly care','playmate for children')"`
	OtherRequirements      string         `json:"other_requirements"`
	DatePosted             Date           `json:"date_posted" gorm:"not null"`

	Member          *Member          `json:"member,omitempty" gorm:"foreignKey:MemberUserID;references:MemberUserID"`
	JobApplications []JobApplication `json:"job_applications,omitempty" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

func (j *Job) Validate() error {
	switch {
	case j.MemberUserID == 0:
		return apperr.Validationf("member_user_id is required")
	case !j.RequiredCaregivingType.Valid():
		return apperr.Validationf("invalid required_caregiving_type %q", j.RequiredCaregivingType)
	case j.DatePosted.IsZero():
		return apperr.Validationf("date_posted is required")
	}
	return nil
}

func (j *Job) BeforeSave(tx *gorm.DB) error {
	if j.RequiredCaregivingType != "" && !j.RequiredCaregivingType.Valid() {
		return apperr.Validationf("invalid required_caregiving_type %q", j.RequiredCaregivingType)
	}
	return nil
}

// JobApplication records a caregiver's interest in a job. The composite
// primary key keeps a caregiver from applying to the same job twice.
type JobApplication struct {
	CaregiverUserID uint `json:"caregiver_user_id" gorm:"column:caregiver_user_id;primaryKey;autoIncrement:false"`
	JobID           uint `json:"job_id" gorm:"column:job_id;primaryKey;autoIncrement:false"`
	DateApplied     Date `json:"date_applied" gorm:"not null"`

	Caregiver *Caregiver `json:"caregiver,omitempty" gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID"`
	Job       *Job       `json:"job,omitempty" gorm:"foreignKey:JobID;references:JobID"`
}

func (a *JobApplication) Validate() error {
	switch {
	case a.CaregiverUserID == 0:
		return apperr.Validationf("caregiver_user_id is required")
	case a.JobID == 0:
		return apperr.Validationf("job_id is required")
	case a.DateApplied.IsZero():
		return apperr.Validationf("date_applied is required")
	}
	return nil
}
