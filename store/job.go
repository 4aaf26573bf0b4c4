package store

import (
	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.Preload("Member.User").Order("job_id").Find(&jobs).Error; err != nil {
		return nil, apperr.Classify(err)
	}
	return jobs, nil
}

func (s *Store) CreateJob(j *models.Job) error {
	if err := j.Validate(); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m models.Member
		if err := tx.First(&m, j.MemberUserID).Error; err != nil {
			return notFoundOr(err, "member", j.MemberUserID)
		}
		return tx.Omit(clause.Associations).Create(j).Error
	})
	return apperr.Classify(err)
}

func (s *Store) GetJob(id uint) (*models.Job, error) {
	var j models.Job
	if err := s.db.Preload("Member.User").First(&j, id).Error; err != nil {
		return nil, notFoundOr(err, "job", id)
	}
	return &j, nil
}

func (s *Store) UpdateJob(id uint, in models.Job) (*models.Job, error) {
	var j models.Job
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&j, id).Error; err != nil {
			return notFoundOr(err, "job", id)
		}
		mergeJob(&j, in)
		if err := j.Validate(); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&j).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &j, nil
}

// DeleteJob removes the job and its applications in one transaction.
func (s *Store) DeleteJob(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var j models.Job
		if err := tx.First(&j, id).Error; err != nil {
			return notFoundOr(err, "job", id)
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, id).Error
	})
	return apperr.Classify(err)
}

func mergeJob(dst *models.Job, in models.Job) {
	if in.RequiredCaregivingType != "" {
		dst.RequiredCaregivingType = in.RequiredCaregivingType
	}
	if in.OtherRequirements != "" {
		dst.OtherRequirements = in.OtherRequirements
	}
	if !in.DatePosted.IsZero() {
		dst.DatePosted = in.DatePosted
	}
}
