package store

import (
	"errors"
	"fmt"

	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListCaregivers() ([]models.Caregiver, error) {
	var caregivers []models.Caregiver
	if err := s.db.Preload("User").Order("caregiver_user_id").Find(&caregivers).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return caregivers, nil
}

// CreateCaregiver inserts the user first, reads its generated id, and inserts
// the caregiver row keyed by it, all in one transaction.
func (s *Store) CreateCaregiver(u models.User, cg models.Caregiver) (*models.Caregiver, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&u).Error; err != nil {
			return err
		}
		cg.CaregiverUserID = u.UserID
		if err := cg.Validate(); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&cg).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	cg.User = &u
	return &cg, nil
}

// AddCaregiverRole attaches a caregiver role to an existing user. Users may
// hold the member role as well; holding the same role twice is a conflict.
func (s *Store) AddCaregiverRole(userID uint, cg models.Caregiver) (*models.Caregiver, error) {
	cg.CaregiverUserID = userID
	if err := cg.Validate(); err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, userID).Error; err != nil {
			return notFoundOr(err, "user", userID)
		}
		var existing models.Caregiver
		err := tx.First(&existing, userID).Error
		if err == nil {
			return apperr.Constraint(fmt.Sprintf("user %d already has a caregiver role", userID), nil)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		cg.User = &u
		return tx.Omit(clause.Associations).Create(&cg).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &cg, nil
}

func (s *Store) GetCaregiver(id uint) (*models.Caregiver, error) {
	var cg models.Caregiver
	if err := s.db.Preload("User").First(&cg, id).Error; err != nil {
		return nil, notFoundOr(err, "caregiver", id)
	}
	return &cg, nil
}

func (s *Store) UpdateCaregiver(id uint, userIn models.User, cgIn models.Caregiver) (*models.Caregiver, error) {
	var cg models.Caregiver
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&cg, id).Error; err != nil {
			return notFoundOr(err, "caregiver", id)
		}
		mergeUser(cg.User, userIn)
		mergeCaregiver(&cg, cgIn)
		if err := cg.User.Validate(); err != nil {
			return err
		}
		if err := cg.Validate(); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(cg.User).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&cg).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &cg, nil
}

// DeleteCaregiver removes the caregiver role and everything it owns. The
// underlying user row stays; ownership never cascades upward.
func (s *Store) DeleteCaregiver(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cg models.Caregiver
		if err := tx.First(&cg, id).Error; err != nil {
			return notFoundOr(err, "caregiver", id)
		}
		if err := deleteCaregiverOwned(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Caregiver{}, id).Error
	})
	return apperr.Classify(err)
}

// ApplyCommission rewrites every caregiver's hourly rate with the platform
// commission applied and reports how many rows changed.
func (s *Store) ApplyCommission() (int64, error) {
	var updated int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var caregivers []models.Caregiver
		if err := tx.Order("caregiver_user_id").Find(&caregivers).Error; err != nil {
			return err
		}
		for i := range caregivers {
			err := tx.Model(&models.Caregiver{}).
				Where("caregiver_user_id = ?", caregivers[i].CaregiverUserID).
				Update("hourly_rate", caregivers[i].CommissionedRate()).Error
			if err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, apperr.Classify(err)
	}
	return updated, nil
}

func deleteCaregiverOwned(tx *gorm.DB, caregiverID uint) error {
	if err := tx.Where("caregiver_user_id = ?", caregiverID).Delete(&models.Appointment{}).Error; err != nil {
		return err
	}
	return tx.Where("caregiver_user_id = ?", caregiverID).Delete(&models.JobApplication{}).Error
}

func mergeCaregiver(dst *models.Caregiver, in models.Caregiver) {
	if in.Photo != "" {
		dst.Photo = in.Photo
	}
	if in.Gender != "" {
		dst.Gender = in.Gender
	}
	if in.CaregivingType != "" {
		dst.CaregivingType = in.CaregivingType
	}
	if !in.HourlyRate.IsZero() {
		dst.HourlyRate = in.HourlyRate
	}
}
