package controllers

import (
	"github.com/caregivers-platform/backend/apperr"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

// fail maps a classified error onto an HTTP status and the standard error
// body. Every failure leaving a controller goes through here.
func fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusBadGateway
	switch {
	case apperr.IsValidation(err):
		status = fiber.StatusBadRequest
	case apperr.IsNotFound(err):
		status = fiber.StatusNotFound
	case apperr.IsConstraint(err):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(utils.ErrorResponse{
		Message: msg,
		Error:   err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
		Message: msg,
		Error:   err.Error(),
	})
}

// paramID parses the ":id" route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperr.Validationf("invalid %s parameter", name)
	}
	return uint(id), nil
}
