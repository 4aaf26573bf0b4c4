package store

import (
	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Preload("Caregiver.User").Preload("Member.User").
		Order("appointment_id").Find(&appointments).Error
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return appointments, nil
}

func (s *Store) CreateAppointment(a *models.Appointment) error {
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	if err := a.Validate(); err != nil {
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cg models.Caregiver
		if err := tx.First(&cg, a.CaregiverUserID).Error; err != nil {
			return notFoundOr(err, "caregiver", a.CaregiverUserID)
		}
		var m models.Member
		if err := tx.First(&m, a.MemberUserID).Error; err != nil {
			return notFoundOr(err, "member", a.MemberUserID)
		}
		return tx.Omit(clause.Associations).Create(a).Error
	})
	return apperr.Classify(err)
}

func (s *Store) GetAppointment(id uint) (*models.Appointment, error) {
	var a models.Appointment
	err := s.db.Preload("Caregiver.User").Preload("Member.User").First(&a, id).Error
	if err != nil {
		return nil, notFoundOr(err, "appointment", id)
	}
	return &a, nil
}

func (s *Store) UpdateAppointment(id uint, in models.Appointment) (*models.Appointment, error) {
	var a models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			return notFoundOr(err, "appointment", id)
		}
		mergeAppointment(&a, in)
		if err := a.Validate(); err != nil {
			return err
		}
		// Re-pointed participant ids get the same existence check as create.
		if in.CaregiverUserID != 0 {
			var cg models.Caregiver
			if err := tx.First(&cg, in.CaregiverUserID).Error; err != nil {
				return notFoundOr(err, "caregiver", in.CaregiverUserID)
			}
		}
		if in.MemberUserID != 0 {
			var m models.Member
			if err := tx.First(&m, in.MemberUserID).Error; err != nil {
				return notFoundOr(err, "member", in.MemberUserID)
			}
		}
		return tx.Omit(clause.Associations).Save(&a).Error
	})
	if err != nil {
		return nil, apperr.Classify(err)
	}
	return &a, nil
}

func (s *Store) DeleteAppointment(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var a models.Appointment
		if err := tx.First(&a, id).Error; err != nil {
			return notFoundOr(err, "appointment", id)
		}
		return tx.Delete(&models.Appointment{}, id).Error
	})
	return apperr.Classify(err)
}

func mergeAppointment(dst *models.Appointment, in models.Appointment) {
	if in.CaregiverUserID != 0 {
		dst.CaregiverUserID = in.CaregiverUserID
	}
	if in.MemberUserID != 0 {
		dst.MemberUserID = in.MemberUserID
	}
	if !in.AppointmentDate.IsZero() {
		dst.AppointmentDate = in.AppointmentDate
	}
	if in.AppointmentTime != "" {
		dst.AppointmentTime = in.AppointmentTime
	}
	if !in.WorkHours.IsZero() {
		dst.WorkHours = in.WorkHours
	}
	if in.Status != "" {
		dst.Status = in.Status
	}
}
