package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/models"
	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories godoc
// @Summary List all categories
// @Tags Categories
// @Produce json
// @Success 200 {array} string
// @Router /api/categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.categoryService.ListCategories())
}

// AddCategory godoc
// @Summary Add a category unless it already exists
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body models.AddCategoryRequest true "Category name"
// @Success 200 {array} string
// @Failure 400 {object} map[string]interface{}
// @Router /api/categories [post]
func (h *CategoryHandler) AddCategory(c *fiber.Ctx) error {
	var req models.AddCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	categories, err := h.categoryService.AddCategory(req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(categories)
}
