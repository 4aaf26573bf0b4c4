package models

import (
	"github.com/caregivers-platform/backend/apperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CaregivingType enumerates the kinds of care a caregiver offers and a job
// can require.
type CaregivingType string

const (
	TypeBabysitter  CaregivingType = "babysitter"
	TypeElderlyCare CaregivingType = "elderly care"
	TypePlaymate    CaregivingType = "playmate for children"
)

func (t CaregivingType) Valid() bool {
	switch t {
	case TypeBabysitter, TypeElderlyCare, TypePlaymate:
		return true
	}
	return false
}

var (
	commissionThreshold  = decimal.NewFromInt(10)
	commissionFlatFee    = decimal.RequireFromString("0.30")
	commissionMultiplier = decimal.RequireFromString("1.10")
)

// Caregiver extends User one-to-one via a shared primary key.
type Caregiver struct {
	CaregiverUserID uint            `json:"caregiver_user_id" gorm:"column:caregiver_user_id;primaryKey;autoIncrement:false"`
	Photo           string          `json:"photo,omitempty" gorm:"size:255"`
	Gender          string          `json:"gender" gorm:"size:20;not null"`
	CaregivingType  CaregivingType  `json:"caregiving_type" gorm:"size:50;not null;check:chk_caregiving_type,caregiving_type IN ('babysitter','elderly care','playmate for children')"`
	HourlyRate      decimal.Decimal `json:"hourly_rate" gorm:"type:numeric(10,2);not null"`

	User            *User            `json:"user,omitempty" gorm:"foreignKey:CaregiverUserID;references:UserID"`
	JobApplications []JobApplication `json:"job_applications,omitempty" gorm:"foreignKey:CaregiverUserID;constraint:OnDelete:CASCADE"`
	Appointments    []Appointment    `json:"appointments,omitempty" gorm:"foreignKey:CaregiverUserID;constraint:OnDelete:CASCADE"`
}

// CommissionedRate returns the hourly rate with the platform commission
// applied: a flat $0.30 below $10, otherwise 10%.
func (c *Caregiver) CommissionedRate() decimal.Decimal {
	if c.HourlyRate.LessThan(commissionThreshold) {
		return c.HourlyRate.Add(commissionFlatFee).Round(2)
	}
	return c.HourlyRate.Mul(commissionMultiplier).Round(2)
}

func (c *Caregiver) Validate() error {
	switch {
	case c.Gender == "":
		return apperr.Validationf("gender is required")
	case !c.CaregivingType.Valid():
		return apperr.Validationf("invalid caregiving_type %q", c.CaregivingType)
	case c.HourlyRate.IsNegative():
		return apperr.Validationf("hourly_rate must not be negative")
	}
	return nil
}

func (c *Caregiver) BeforeSave(tx *gorm.DB) error {
	if c.CaregivingType != "" && !c.CaregivingType.Valid() {
		return apperr.Validationf("invalid caregiving_type %q", c.CaregivingType)
	}
	return nil
}
