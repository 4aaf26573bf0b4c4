package controllers

import (
	"github.com/caregivers-platform/backend/models"
	"github.com/caregivers-platform/backend/store"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

type AppointmentController struct {
	store *store.Store
}

func NewAppointmentController(s *store.Store) *AppointmentController {
	return &AppointmentController{store: s}
}

// List godoc
// @Summary Get all appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 502 {object} utils.ErrorResponse
// @Router /appointments [get]
func (ctl *AppointmentController) List(c *fiber.Ctx) error {
	appointments, err := ctl.store.ListAppointments()
	if err != nil {
		return fail(c, "Failed to fetch appointments", err)
	}
	return c.JSON(appointments)
}

// Create godoc
// @Summary Create a new appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments [post]
func (ctl *AppointmentController) Create(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := ctl.store.CreateAppointment(&appointment); err != nil {
		return fail(c, "Failed to create appointment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// Get godoc
// @Summary Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func (ctl *AppointmentController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid appointment id", err)
	}
	appointment, err := ctl.store.GetAppointment(id)
	if err != nil {
		return fail(c, "Appointment not found", err)
	}
	return c.JSON(appointment)
}

// Update godoc
// @Summary Update an appointment by ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param appointment body models.Appointment true "Appointment"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [patch]
func (ctl *AppointmentController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid appointment id", err)
	}
	var in models.Appointment
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	appointment, err := ctl.store.UpdateAppointment(id, in)
	if err != nil {
		return fail(c, "Failed to update appointment", err)
	}
	return c.JSON(appointment)
}

// Delete godoc
// @Summary Delete an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [delete]
func (ctl *AppointmentController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid appointment id", err)
	}
	if err := ctl.store.DeleteAppointment(id); err != nil {
		return fail(c, "Failed to delete appointment", err)
	}
	return c.JSON(utils.MessageResponse{Message: "Appointment deleted"})
}
