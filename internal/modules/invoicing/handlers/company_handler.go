package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/services"
)

type CompanyHandler struct {
	companyService *services.CompanyService
}

func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// GetCompanies godoc
// @Summary List all companies
// @Tags Companies
// @Produce json
// @Success 200 {array} models.Company
// @Router /api/companies [get]
func (h *CompanyHandler) GetCompanies(c *fiber.Ctx) error {
	companies, err := h.companyService.ListCompanies()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(companies)
}

// GetCompanyByID godoc
// @Summary Get company by ID
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Company
// @Failure 404 {object} map[string]interface{}
// @Router /api/companies/{id} [get]
func (h *CompanyHandler) GetCompanyByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid company id",
		})
	}

	company, err := h.companyService.GetCompany(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(company)
}

// CreateCompany godoc
// @Summary Create a company
// @Tags Companies
// @Accept json
// @Produce json
// @Param company body models.CreateCompanyRequest true "Company data"
// @Success 201 {object} map[string]interface{}
// @Router /api/companies [post]
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	company, err := h.companyService.CreateCompany(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Company added successfully",
		"id":      company.ID,
	})
}

// DeleteCompany godoc
// @Summary Delete a company
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid company id",
		})
	}

	if err := h.companyService.DeleteCompany(uint(id)); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Company deleted successfully",
	})
}
