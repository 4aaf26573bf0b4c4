package models

import (
	"github.com/caregivers-platform/backend/apperr"
	"gorm.io/gorm"
)

// User is the root of the identity graph. A user may additionally hold a
// Caregiver role, a Member role, or both.
type User struct {
	UserID             uint   `json:"user_id" gorm:"column:user_id;primaryKey"`
	Email              string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	GivenName          string `json:"given_name" gorm:"size:100;not null"`
	Surname            string `json:"surname" gorm:"size:100;not null"`
	City               string `json:"city" gorm:"size:100;not null"`
	PhoneNumber        string `json:"phone_number" gorm:"size:20;not null"`
	ProfileDescription string `json:"profile_description,omitempty"`
	Password           string `json:"password,omitempty" gorm:"size:255;not null"`

	Caregiver *Caregiver `json:"caregiver,omitempty" gorm:"foreignKey:CaregiverUserID;constraint:OnDelete:CASCADE"`
	Member    *Member    `json:"member,omitempty" gorm:"foreignKey:MemberUserID;constraint:OnDelete:CASCADE"`
}

// FullName is the display name used by listings and reports.
func (u *User) FullName() string {
	return u.GivenName + " " + u.Surname
}

func (u *User) Validate() error {
	switch {
	case u.Email == "":
		return apperr.Validationf("email is required")
	case u.GivenName == "":
		return apperr.Validationf("given_name is required")
	case u.Surname == "":
		return apperr.Validationf("surname is required")
	case u.City == "":
		return apperr.Validationf("city is required")
	case u.PhoneNumber == "":
		return apperr.Validationf("phone_number is required")
	case u.Password == "":
		return apperr.Validationf("password is required")
	}
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	return u.Validate()
}
