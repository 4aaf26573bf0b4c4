package controllers

import (
	"github.com/caregivers-platform/backend/models"
	"github.com/caregivers-platform/backend/store"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	store *store.Store
}

func NewUserController(s *store.Store) *UserController {
	return &UserController{store: s}
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 502 {object} utils.ErrorResponse
// @Router /users [get]
func (ctl *UserController) List(c *fiber.Ctx) error {
	users, err := ctl.store.ListUsers()
	if err != nil {
		return fail(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

// Create godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /users [post]
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := ctl.store.CreateUser(&user); err != nil {
		return fail(c, "Failed to create user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Get godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [get]
func (ctl *UserController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid user id", err)
	}
	user, err := ctl.store.GetUser(id)
	if err != nil {
		return fail(c, "User not found", err)
	}
	return c.JSON(user)
}

// Update godoc
// @Summary Update a user by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.User true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [patch]
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid user id", err)
	}
	var in models.User
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	user, err := ctl.store.UpdateUser(id, in)
	if err != nil {
		return fail(c, "Failed to update user", err)
	}
	return c.JSON(user)
}

// Delete godoc
// @Summary Delete a user and everything it owns
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [delete]
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid user id", err)
	}
	if err := ctl.store.DeleteUser(id); err != nil {
		return fail(c, "Failed to delete user", err)
	}
	return c.JSON(utils.MessageResponse{Message: "User deleted"})
}
