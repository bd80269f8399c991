package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notice-board/internal/api/dto"
	"github.com/spec-kit/notice-board/internal/service"
	"github.com/spec-kit/notice-board/pkg/util"
)

// UsersHandler exposes registration and the approval workflow.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users})
}

// Pending handles GET /users/pending.
func (h *UsersHandler) Pending(c *fiber.Ctx) error {
	users, err := h.users.ListPending(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users})
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.Register(c.UserContext(), service.UserRegisterInput{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Email:      req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": user})
}

// Approve handles POST /users/approve.
func (h *UsersHandler) Approve(c *fiber.Ctx) error {
	var req dto.UserEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := h.users.Approve(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"email": req.Email}})
}

// Reject handles POST /users/reject.
func (h *UsersHandler) Reject(c *fiber.Ctx) error {
	var req dto.UserEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := h.users.Reject(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"email": req.Email}})
}
