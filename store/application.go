package store

import (
	"errors"
	"fmt"

	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListApplications() ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := s.db.Preload("Caregiver.User").Preload("Job").
		Order("job_id, date_applied").Find(&applications).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return applications, nil
}

// CreateApplication records a caregiver's application to a job. A caregiver
// may apply to a given job at most once.
func (s *Store) CreateApplication(a *models.JobApplication) error {
	if err := a.Validate(); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cg models.Caregiver
		if err := tx.First(&cg, a.CaregiverUserID).Error; err != nil {
			return notFoundOr(err, "caregiver", a.CaregiverUserID)
		}
		var j models.Job
		if err := tx.First(&j, a.JobID).Error; err != nil {
			return notFoundOr(err, "job", a.JobID)
		}
		var existing models.JobApplication
		err := tx.Where("caregiver_user_id = ? AND job_id = ?", a.CaregiverUserID, a.JobID).
			First(&existing).Error
		if err == nil {
			return apperr.Constraint(
				fmt.Sprintf("caregiver %d already applied to job %d", a.CaregiverUserID, a.JobID), nil)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Omit(clause.Associations).Create(a).Error
	})
	return apperr.Classify(err)
}

func (s *Store) GetApplication(caregiverID, jobID uint) (*models.JobApplication, error) {
	var a models.JobApplication
	err := s.db.Preload("Caregiver.User").Preload("Job").
		Where("caregiver_user_id = ? AND job_id = ?", caregiverID, jobID).First(&a).Error
	if err != nil {
		return nil, notFoundOr(err, "job application", fmt.Sprintf("(%d,%d)", caregiverID, jobID))
	}
	return &a, nil
}

func (s *Store) UpdateApplication(caregiverID, jobID uint, dateApplied models.Date) (*models.JobApplication, error) {
	if dateApplied.IsZero() {
		return nil, apperr.Validationf("date_applied is required")
	}
	var a models.JobApplication
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("caregiver_user_id = ? AND job_id = ?", caregiverID, jobID).First(&a).Error
		if err != nil {
			return notFoundOr(err, "job application", fmt.Sprintf("(%d,%d)", caregiverID, jobID))
		}
		a.DateApplied = dateApplied
		return tx.Omit(clause.Associations).Save(&a).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &a, nil
}

func (s *Store) DeleteApplication(caregiverID, jobID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var a models.JobApplication
		err := tx.Where("caregiver_user_id = ? AND job_id = ?", caregiverID, jobID).First(&a).Error
		if err != nil {
			return notFoundOr(err, "job application", fmt.Sprintf("(%d,%d)", caregiverID, jobID))
		}
		return tx.Where("caregiver_user_id = ? AND job_id = ?", caregiverID, jobID).
			Delete(&models.JobApplication{}).Error
	})
	return apperr.Classify(err)
}
