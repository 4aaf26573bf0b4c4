package controllers

import (
	"github.com/caregivers-platform/backend/models"
	"github.com/caregivers-platform/backend/store"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

type ApplicationController struct {
	store *store.Store
}

func NewApplicationController(s *store.Store) *ApplicationController {
	return &ApplicationController{store: s}
}

// Applications are addressed by their composite key:
// /applications/:caregiver_id/:job_id.
func (ctl *ApplicationController) List(c *fiber.Ctx) error {
	applications, err := ctl.store.ListApplications()
	if err != nil {
		return fail(c, "Failed to fetch job applications", err)
	}
	return c.JSON(applications)
}

func (ctl *ApplicationController) Create(c *fiber.Ctx) error {
	var application models.JobApplication
	if err := c.BodyParser(&application); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := ctl.store.CreateApplication(&application); err != nil {
		return fail(c, "Failed to create job application", err)
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

func (ctl *ApplicationController) Get(c *fiber.Ctx) error {
	caregiverID, jobID, err := applicationKey(c)
	if err != nil {
		return fail(c, "Invalid job application key", err)
	}
	application, err := ctl.store.GetApplication(caregiverID, jobID)
	if err != nil {
		return fail(c, "Job application not found", err)
	}
	return c.JSON(application)
}

func (ctl *ApplicationController) Update(c *fiber.Ctx) error {
	caregiverID, jobID, err := applicationKey(c)
	if err != nil {
		return fail(c, "Invalid job application key", err)
	}
	var in models.JobApplication
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	application, err := ctl.store.UpdateApplication(caregiverID, jobID, in.DateApplied)
	if err != nil {
		return fail(c, "Failed to update job application", err)
	}
	return c.JSON(application)
}

func (ctl *ApplicationController) Delete(c *fiber.Ctx) error {
	caregiverID, jobID, err := applicationKey(c)
	if err != nil {
		return fail(c, "Invalid job application key", err)
	}
	if err := ctl.store.DeleteApplication(caregiverID, jobID); err != nil {
		return fail(c, "Failed to delete job application", err)
	}
	return c.JSON(utils.MessageResponse{Message: "Job application deleted"})
}

func applicationKey(c *fiber.Ctx) (caregiverID, jobID uint, err error) {
	caregiverID, err = paramID(c, "caregiver_id")
	if err != nil {
		return 0, 0, err
	}
	jobID, err = paramID(c, "job_id")
	if err != nil {
		return 0, 0, err
	}
	return caregiverID, jobID, nil
}
