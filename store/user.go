package store

import (
	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("user_id").Find(&users).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return users, nil
}

func (s *Store) CreateUser(u *models.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(u).Error
	})
	return apperr.Classify(err)
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return &u, nil
}

func (s *Store) UpdateUser(id uint, in models.User) (*models.User, error) {
	var u models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, id).Error; err != nil {
			return notFoundOr(err, "user", id)
		}
		mergeUser(&u, in)
		if err := u.Validate(); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&u).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &u, nil
}

// DeleteUser removes the user and everything transitively owned by its
// caregiver and member roles, child rows first, in one transaction.
func (s *Store) DeleteUser(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, id).Error; err != nil {
			return notFoundOr(err, "user", id)
		}
		if err := deleteCaregiverOwned(tx, id); err != nil {
			return err
		}
		if err := deleteMemberOwned(tx, id); err != nil {
			return err
		}
		if err := tx.Where("caregiver_user_id = ?", id).Delete(&models.Caregiver{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_user_id = ?", id).Delete(&models.Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	return apperr.Classify(err)
}

// mergeUser overwrites the fields provided in the update payload; zero-valued
// fields are left untouched.
func mergeUser(dst *models.User, in models.User) {
	if in.Email != "" {
		dst.Email = in.Email
	}
	if in.GivenName != "" {
		dst.GivenName = in.GivenName
	}
	if in.Surname != "" {
		dst.Surname = in.Surname
	}
	if in.City != "" {
		dst.City = in.City
	}
	if in.PhoneNumber != "" {
		dst.PhoneNumber = in.PhoneNumber
	}
	if in.ProfileDescription != "" {
		dst.ProfileDescription = in.ProfileDescription
	}
	if in.Password != "" {
		dst.Password = in.Password
	}
}
