package cron

import (
	"fmt"
	"time"

	"github.com/caregivers-platform/backend/db"
	"github.com/caregivers-platform/backend/logger"
	"github.com/caregivers-platform/backend/models"
	"github.com/caregivers-platform/backend/redis"
	"github.com/caregivers-platform/backend/utils"
	"github.com/robfig/cron/v3"
)

// StartReminderScheduler runs the day-before reminder pass every morning.
func StartReminderScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 8 * * *", sendAppointmentReminders)
	if err != nil {
		logger.Log.Fatalw("failed to schedule reminder job", "error", err)
	}
	c.Start()
	logger.Log.Info("reminder scheduler started")
}

// sendAppointmentReminders mails members about accepted appointments
// scheduled for the next day. A redis SETNX key per appointment keeps a
// reminder from going out twice.
func sendAppointmentReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1)
	target := models.NewDate(tomorrow.Year(), tomorrow.Month(), tomorrow.Day())

	var appointments []models.Appointment
	err := db.DB.Preload("Caregiver.User").Preload("Member.User").
		Where("status = ? AND appointment_date = ?", models.StatusAccepted, target).
		Find(&appointments).Error
	if err != nil {
		logger.Log.Errorw("failed to fetch appointments for reminders", "error", err)
		return
	}

	for i := range appointments {
		appointment := &appointments[i]
		key := fmt.Sprintf("reminder:appointment:%d", appointment.AppointmentID)
		fresh, err := redis.Client.SetNX(redis.Ctx, key, "1", 48*time.Hour).Result()
		if err != nil {
			logger.Log.Errorw("reminder dedupe check failed", "appointment_id", appointment.AppointmentID, "error", err)
			continue
		}
		if !fresh {
			continue
		}
		if err := sendReminderEmail(appointment); err != nil {
			logger.Log.Errorw("failed to send reminder",
				"appointment_id", appointment.AppointmentID, "error", err)
			continue
		}
		logger.Log.Infow("sent appointment reminder",
			"appointment_id", appointment.AppointmentID,
			"to", appointment.Member.User.Email)
	}
}

func sendReminderEmail(appointment *models.Appointment) error {
	if appointment.Member == nil || appointment.Member.User == nil ||
		appointment.Caregiver == nil || appointment.Caregiver.User == nil {
		return fmt.Errorf("appointment %d missing participant records", appointment.AppointmentID)
	}

	member := appointment.Member.User
	caregiver := appointment.Caregiver.User

	subject := fmt.Sprintf("Reminder: appointment with %s tomorrow", caregiver.FullName())
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder of your appointment scheduled for tomorrow.</p>
		<ul>
			<li><strong>Caregiver:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Hours:</strong> %s</li>
		</ul>
		<p>If you need to reschedule, please update the appointment as soon as possible.</p>
	`, member.FullName(), caregiver.FullName(),
		appointment.AppointmentDate.String(),
		appointment.AppointmentTime,
		appointment.WorkHours.StringFixed(2))

	return utils.SendEmail(member.Email, subject, body)
}
