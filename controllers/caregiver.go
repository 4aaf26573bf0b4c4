package controllers

import (
	"github.com/caregivers-platform/backend/models"
	"github.com/caregivers-platform/backend/store"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

type CaregiverController struct {
	store *store.Store
}

func NewCaregiverController(s *store.Store) *CaregiverController {
	return &CaregiverController{store: s}
}

// caregiverRequest carries the user fields and the caregiver role fields for
// the composite two-phase create and for updates.
type caregiverRequest struct {
	User      models.User      `json:"user"`
	Caregiver models.Caregiver `json:"caregiver"`
}

// List returns all caregivers joined with their user records.
func (ctl *CaregiverController) List(c *fiber.Ctx) error {
	caregivers, err := ctl.store.ListCaregivers()
	if err != nil {
		return fail(c, "Failed to fetch caregivers", err)
	}
	return c.JSON(caregivers)
}

// Create inserts the user and its caregiver role in one atomic unit.
func (ctl *CaregiverController) Create(c *fiber.Ctx) error {
	var req caregiverRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	caregiver, err := ctl.store.CreateCaregiver(req.User, req.Caregiver)
	if err != nil {
		return fail(c, "Failed to create caregiver", err)
	}
	return c.Status(fiber.StatusCreated).JSON(caregiver)
}

// AddRole attaches a caregiver role to an existing user.
func (ctl *CaregiverController) AddRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid user id", err)
	}
	var caregiver models.Caregiver
	if err := c.BodyParser(&caregiver); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	created, err := ctl.store.AddCaregiverRole(id, caregiver)
	if err != nil {
		return fail(c, "Failed to add caregiver role", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ctl *CaregiverController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid caregiver id", err)
	}
	caregiver, err := ctl.store.GetCaregiver(id)
	if err != nil {
		return fail(c, "Caregiver not found", err)
	}
	return c.JSON(caregiver)
}

func (ctl *CaregiverController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid caregiver id", err)
	}
	var req caregiverRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	caregiver, err := ctl.store.UpdateCaregiver(id, req.User, req.Caregiver)
	if err != nil {
		return fail(c, "Failed to update caregiver", err)
	}
	return c.JSON(caregiver)
}

func (ctl *CaregiverController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid caregiver id", err)
	}
	if err := ctl.store.DeleteCaregiver(id); err != nil {
		return fail(c, "Failed to delete caregiver", err)
	}
	return c.JSON(utils.MessageResponse{Message: "Caregiver deleted"})
}

// ApplyCommission adjusts every caregiver's hourly rate by the platform
// commission rule and reports the number of rows updated.
func (ctl *CaregiverController) ApplyCommission(c *fiber.Ctx) error {
	updated, err := ctl.store.ApplyCommission()
	if err != nil {
		return fail(c, "Failed to apply commission", err)
	}
	return c.JSON(fiber.Map{"rows_updated": updated})
}
