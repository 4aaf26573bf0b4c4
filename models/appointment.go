package models

import (
	"time"

	"github.com/caregivers-platform/backend/apperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AppointmentStatus tracks the member's decision on a scheduled engagement.
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusAccepted AppointmentStatus = "accepted"
	StatusDeclined AppointmentStatus = "declined"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// timeLayout is the 24h "HH:MM" format used for appointment start times.
const timeLayout = "15:04"

// Appointment is a scheduled engagement between a Caregiver and a Member.
type Appointment struct {
	AppointmentID   uint              `json:"appointment_id" gorm:"column:appointment_id;primaryKey"`
	CaregiverUserID uint              `json:"caregiver_user_id" gorm:"not null"`
	MemberUserID    uint              `json:"member_user_id" gorm:"not null"`
	AppointmentDate Date              `json:"appointment_date" gorm:"not null"`
	AppointmentTime string            `json:"appointment_time" gorm:"type:time;not null"`
	WorkHours       decimal.Decimal   `json:"work_hours" gorm:"type:numeric(5,2);not null"`
	Status          AppointmentStatus `json:"status" gorm:"size:20;not null;check:chk_status,status IN ('pending','accepted','declined')"`

	Caregiver *Caregiver `json:"caregiver,omitempty" gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID"`
	Member    *Member    `json:"member,omitempty" gorm:"foreignKey:MemberUserID;references:MemberUserID"`
}

func (a *Appointment) Validate() error {
	switch {
	case a.CaregiverUserID == 0:
		return apperr.Validationf("caregiver_user_id is required")
	case a.MemberUserID == 0:
		return apperr.Validationf("member_user_id is required")
	case a.AppointmentDate.IsZero():
		return apperr.Validationf("appointment_date is required")
	case a.WorkHours.IsNegative():
		return apperr.Validationf("work_hours must not be negative")
	case !a.Status.Valid():
		return apperr.Validationf("invalid status %q", a.Status)
	}
	if _, err := time.Parse(timeLayout, a.AppointmentTime); err != nil {
		return apperr.Validationf("appointment_time must be HH:MM, got %q", a.AppointmentTime)
	}
	return nil
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	if a.Status != "" && !a.Status.Valid() {
		return apperr.Validationf("invalid status %q", a.Status)
	}
	return nil
}
