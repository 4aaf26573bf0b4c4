package models

import (
	"github.com/caregivers-platform/backend/apperr"
	"gorm.io/gorm"
)

// Member extends User one-to-one via a shared primary key. A member owns one
// Address and any number of Jobs and Appointments.
type Member struct {
	MemberUserID         uint   `json:"member_user_id" gorm:"column:member_user_id;primaryKey;autoIncrement:false"`
	HouseRules           string `json:"house_rules"`
	DependentDescription string `json:"dependent_description"`

	User         *User         `json:"user,omitempty" gorm:"foreignKey:MemberUserID;references:UserID"`
	Address      *Address      `json:"address,omitempty" gorm:"foreignKey:MemberUserID;constraint:OnDelete:CASCADE"`
	Jobs         []Job         `json:"jobs,omitempty" gorm:"foreignKey:MemberUserID;constraint:OnDelete:CASCADE"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:MemberUserID;constraint:OnDelete:CASCADE"`
}

// Address is the member's residence, keyed by the member itself.
type Address struct {
	MemberUserID uint   `json:"member_user_id" gorm:"column:member_user_id;primaryKey;autoIncrement:false"`
	HouseNumber  string `json:"house_number" gorm:"size:20;not null"`
	Street       string `json:"street" gorm:"size:255;not null"`
	Town         string `json:"town" gorm:"size:100;not null"`
}

func (a *Address) Validate() error {
	switch {
	case a.HouseNumber == "":
		return apperr.Validationf("house_number is required")
	case a.Street == "":
		return apperr.Validationf("street is required")
	case a.Town == "":
		return apperr.Validationf("town is required")
	}
	return nil
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	return a.Validate()
}
