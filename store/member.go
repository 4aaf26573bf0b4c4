package store

import (
	"errors"
	"fmt"

	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListMembers() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Preload("User").Preload("Address").Order("member_user_id").Find(&members).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return members, nil
}

// CreateMember inserts the user, the member row keyed by the generated id,
// and the member's address as one atomic unit.
func (s *Store) CreateMember(u models.User, m models.Member, addr models.Address) (*models.Member, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&u).Error; err != nil {
			return err
		}
		m.MemberUserID = u.UserID
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		addr.MemberUserID = u.UserID
		return tx.Omit(clause.Associations).Create(&addr).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	m.User = &u
	m.Address = &addr
	return &m, nil
}

// AddMemberRole attaches a member role (with its address) to an existing
// user.
func (s *Store) AddMemberRole(userID uint, m models.Member, addr models.Address) (*models.Member, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, userID).Error; err != nil {
			return notFoundOr(err, "user", userID)
		}
		var existing models.Member
		err := tx.First(&existing, userID).Error
		if err == nil {
			return apperr.Constraint(fmt.Sprintf("user %d already has a member role", userID), nil)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m.MemberUserID = userID
		m.User = &u
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		addr.MemberUserID = userID
		return tx.Omit(clause.Associations).Create(&addr).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	m.Address = &addr
	return &m, nil
}

func (s *Store) GetMember(id uint) (*models.Member, error) {
	var m models.Member
	if err := s.db.Preload("User").Preload("Address").First(&m, id).Error; err != nil {
		return nil, notFoundOr(err, "member", id)
	}
	return &m, nil
}

func (s *Store) UpdateMember(id uint, userIn models.User, memberIn models.Member, addrIn models.Address) (*models.Member, error) {
	var m models.Member
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").Preload("Address").First(&m, id).Error; err != nil {
			return notFoundOr(err, "member", id)
		}
		mergeUser(m.User, userIn)
		mergeMember(&m, memberIn)
		mergeAddress(m.Address, addrIn)
		if err := m.User.Validate(); err != nil {
			return err
		}
		if err := m.Address.Validate(); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(m.User).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(m.Address).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &m, nil
}

// DeleteMember removes the member role and everything it owns: appointments,
// the applications on its jobs, the jobs, and the address. The user row
// stays.
func (s *Store) DeleteMember(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m models.Member
		if err := tx.First(&m, id).Error; err != nil {
			return notFoundOr(err, "member", id)
		}
		if err := deleteMemberOwned(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Member{}, id).Error
	})
	return apperr.Classify(err)
}

func deleteMemberOwned(tx *gorm.DB, memberID uint) error {
	if err := tx.Where("member_user_id = ?", memberID).Delete(&models.Appointment{}).Error; err != nil {
		return err
	}
	memberJobs := tx.Model(&models.Job{}).Select("job_id").Where("member_user_id = ?", memberID)
	if err := tx.Where("job_id IN (?)", memberJobs).Delete(&models.JobApplication{}).Error; err != nil {
		return err
	}
	if err := tx.Where("member_user_id = ?", memberID).Delete(&models.Job{}).Error; err != nil {
		return err
	}
	return tx.Where("member_user_id = ?", memberID).Delete(&models.Address{}).Error
}

func mergeMember(dst *models.Member, in models.Member) {
	if in.HouseRules != "" {
		dst.HouseRules = in.HouseRules
	}
	if in.DependentDescription != "" {
		dst.DependentDescription = in.DependentDescription
	}
}

func mergeAddress(dst *models.Address, in models.Address) {
	if in.HouseNumber != "" {
		dst.HouseNumber = in.HouseNumber
	}
	if in.Street != "" {
		dst.Street = in.Street
	}
	if in.Town != "" {
		dst.Town = in.Town
	}
}
