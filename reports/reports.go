// Package reports implements the read-only reporting queries. Rows are
// fetched with explicit joins and declared result shapes; every numeric
// aggregate is computed with decimal arithmetic, never floats.
package reports

import (
	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Reports struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Reports {
	return &Reports{db: db}
}

// AcceptedAppointment pairs an accepted appointment with both display names.
type AcceptedAppointment struct {
	AppointmentID   uint            `json:"appointment_id"`
	CaregiverName   string          `json:"caregiver_name"`
	MemberName      string          `json:"member_name"`
	AppointmentDate models.Date     `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
	WorkHours       decimal.Decimal `json:"work_hours"`
}

func (r *Reports) AcceptedAppointments() ([]AcceptedAppointment, error) {
	var rows []AcceptedAppointment
	err := r.db.Table("appointments").
		Select(`appointments.appointment_id,
			cu.given_name || ' ' || cu.surname AS caregiver_name,
			mu.given_name || ' ' || mu.surname AS member_name,
			appointments.appointment_date,
			appointments.appointment_time,
			appointments.work_hours`).
		Joins("JOIN users cu ON cu.user_id = appointments.caregiver_user_id").
		Joins("JOIN users mu ON mu.user_id = appointments.member_user_id").
		Where("appointments.status = ?", models.StatusAccepted).
		Order("appointments.appointment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return rows, nil
}

// JobsMatchingRequirements returns jobs whose other_requirements contains the
// fragment. The containment check is case-sensitive.
func (r *Reports) JobsMatchingRequirements(fragment string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("other_requirements LIKE ?", "%"+fragment+"%").
		Order("job_id").Find(&jobs).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return jobs, nil
}

// BabysitterWorkHours lists work_hours of appointments whose caregiver is a
// babysitter.
func (r *Reports) BabysitterWorkHours() ([]decimal.Decimal, error) {
	var hours []decimal.Decimal
	err := r.db.Table("appointments").
		Joins("JOIN caregivers c ON c.caregiver_user_id = appointments.caregiver_user_id").
		Where("c.caregiving_type = ?", models.TypeBabysitter).
		Order("appointments.appointment_id").
		Pluck("appointments.work_hours", &hours).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return hours, nil
}

// MemberMatch is a member matched by the multi-condition search.
type MemberMatch struct {
	MemberUserID uint   `json:"member_user_id"`
	MemberName   string `json:"member_name"`
	City         string `json:"city"`
	HouseRules   string `json:"house_rules"`
}

// MembersSeekingElderlyCare returns members with at least one elderly-care
// job, living in the given city, whose house rules contain the fragment.
// Deduplicated by member.
func (r *Reports) MembersSeekingElderlyCare(city, ruleFragment string) ([]MemberMatch, error) {
	var rows []MemberMatch
	err := r.db.Table("members").
		Select(`DISTINCT members.member_user_id,
			u.given_name || ' ' || u.surname AS member_name,
			u.city,
			members.house_rules`).
		Joins("JOIN users u ON u.user_id = members.member_user_id").
		Joins("JOIN jobs j ON j.member_user_id = members.member_user_id").
		Where("j.required_caregiving_type = ?", models.TypeElderlyCare).
		Where("u.city = ?", city).
		Where("members.house_rules LIKE ?", "%"+ruleFragment+"%").
		Order("members.member_user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return rows, nil
}

// JobApplicationCount reports how many caregivers applied to one job.
type JobApplicationCount struct {
	JobID      uint   `json:"job_id"`
	MemberName string `json:"member_name"`
	Applicants int64  `json:"applicants"`
}

func (r *Reports) JobApplicationCounts() ([]JobApplicationCount, error) {
	var rows []JobApplicationCount
	err := r.db.Table("jobs").
		Select(`jobs.job_id,
			u.given_name || ' ' || u.surname AS member_name,
			COUNT(ja.job_id) AS applicants`).
		Joins("JOIN users u ON u.user_id = jobs.member_user_id").
		Joins("LEFT JOIN job_applications ja ON ja.job_id = jobs.job_id").
		Group("jobs.job_id, u.given_name, u.surname").
		Order("jobs.job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return rows, nil
}

// JobApplicationsView reads the standing job_applications_view, one row per
// application, ordered by job then application date.
func (r *Reports) JobApplicationsView() ([]models.JobApplicationRow, error) {
	var rows []models.JobApplicationRow
	if err := r.db.Order("job_id, date_applied").Find(&rows).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return rows, nil
}

// acceptedPay is the raw joined row behind the earnings and cost reports.
type acceptedPay struct {
	AppointmentID uint
	CaregiverName string
	HourlyRate    decimal.Decimal
	WorkHours     decimal.Decimal
}

func (r *Reports) acceptedPayRows() ([]acceptedPay, error) {
	var rows []acceptedPay
	err := r.db.Table("appointments").
		Select(`appointments.appointment_id,
			u.given_name || ' ' || u.surname AS caregiver_name,
			c.hourly_rate,
			appointments.work_hours`).
		Joins("JOIN caregivers c ON c.caregiver_user_id = appointments.caregiver_user_id").
		Joins("JOIN users u ON u.user_id = c.caregiver_user_id").
		Where("appointments.status = ?", models.StatusAccepted).
		Order("appointments.appointment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return rows, nil
}
