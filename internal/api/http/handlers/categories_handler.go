package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notice-board/internal/api/dto"
	"github.com/spec-kit/notice-board/internal/service"
	"github.com/spec-kit/notice-board/pkg/util"
)

// CategoriesHandler exposes the category tag set.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categoryService *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categoryService}
}

// List handles GET /categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categories})
}

// Add handles POST /categories. Adding an existing tag succeeds without
// changing the list.
func (h *CategoriesHandler) Add(c *fiber.Ctx) error {
	var req dto.CategoryAddRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := h.categories.AddCategory(c.UserContext(), req.Name); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"name": req.Name}})
}
