package controllers

import (
	"github.com/caregivers-platform/backend/models"
	"github.com/caregivers-platform/backend/store"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

type JobController struct {
	store *store.Store
}

func NewJobController(s *store.Store) *JobController {
	return &JobController{store: s}
}

func (ctl *JobController) List(c *fiber.Ctx) error {
	jobs, err := ctl.store.ListJobs()
	if err != nil {
		return fail(c, "Failed to fetch jobs", err)
	}
	return c.JSON(jobs)
}

func (ctl *JobController) Create(c *fiber.Ctx) error {
	var job models.Job
	if err := c.BodyParser(&job); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := ctl.store.CreateJob(&job); err != nil {
		return fail(c, "Failed to create job", err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (ctl *JobController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid job id", err)
	}
	job, err := ctl.store.GetJob(id)
	if err != nil {
		return fail(c, "Job not found", err)
	}
	return c.JSON(job)
}

func (ctl *JobController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid job id", err)
	}
	var in models.Job
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	job, err := ctl.store.UpdateJob(id, in)
	if err != nil {
		return fail(c, "Failed to update job", err)
	}
	return c.JSON(job)
}

func (ctl *JobController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid job id", err)
	}
	if err := ctl.store.DeleteJob(id); err != nil {
		return fail(c, "Failed to delete job", err)
	}
	return c.JSON(utils.MessageResponse{Message: "Job deleted"})
}
