package controllers

import (
	"github.com/caregivers-platform/backend/models"
	"github.com/caregivers-platform/backend/store"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
)

type MemberController struct {
	store *store.Store
}

func NewMemberController(s *store.Store) *MemberController {
	return &MemberController{store: s}
}

// memberRequest carries user, member, and address fields; a member is always
// created together with its address in the same transaction.
type memberRequest struct {
	User    models.User    `json:"user"`
	Member  models.Member  `json:"member"`
	Address models.Address `json:"address"`
}

type memberRoleRequest struct {
	Member  models.Member  `json:"member"`
	Address models.Address `json:"address"`
}

func (ctl *MemberController) List(c *fiber.Ctx) error {
	members, err := ctl.store.ListMembers()
	if err != nil {
		return fail(c, "Failed to fetch members", err)
	}
	return c.JSON(members)
}

func (ctl *MemberController) Create(c *fiber.Ctx) error {
	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	member, err := ctl.store.CreateMember(req.User, req.Member, req.Address)
	if err != nil {
		return fail(c, "Failed to create member", err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// AddRole attaches a member role with its address to an existing user.
func (ctl *MemberController) AddRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid user id", err)
	}
	var req memberRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	created, err := ctl.store.AddMemberRole(id, req.Member, req.Address)
	if err != nil {
		return fail(c, "Failed to add member role", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ctl *MemberController) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid member id", err)
	}
	member, err := ctl.store.GetMember(id)
	if err != nil {
		return fail(c, "Member not found", err)
	}
	return c.JSON(member)
}

func (ctl *MemberController) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid member id", err)
	}
	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	member, err := ctl.store.UpdateMember(id, req.User, req.Member, req.Address)
	if err != nil {
		return fail(c, "Failed to update member", err)
	}
	return c.JSON(member)
}

func (ctl *MemberController) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Invalid member id", err)
	}
	if err := ctl.store.DeleteMember(id); err != nil {
		return fail(c, "Failed to delete member", err)
	}
	return c.JSON(utils.MessageResponse{Message: "Member deleted"})
}
