package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/services"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// GetInvoices godoc
// @Summary List invoices with joined client and company names
// @Tags Invoices
// @Produce json
// @Success 200 {array} models.InvoiceRow
// @Router /api/invoices [get]
func (h *InvoiceHandler) GetInvoices(c *fiber.Ctx) error {
	invoices, err := h.invoiceService.ListInvoices()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(invoices)
}

// GetInvoiceByID godoc
// @Summary Get an invoice with its items
// @Tags Invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} models.InvoiceDetail
// @Failure 404 {object} map[string]interface{}
// @Router /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoiceByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid invoice id",
		})
	}

	invoice, err := h.invoiceService.GetInvoice(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(invoice)
}

// CreateInvoice godoc
// @Summary Create an invoice with its items
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body models.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} map[string]interface{}
// @Router /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	var req models.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id, err := h.invoiceService.CreateInvoice(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Invoice saved",
		"invoice": fiber.Map{"id": id},
	})
}

// UpdateInvoice godoc
// @Summary Partially update an invoice, optionally replacing its items
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param invoice body models.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/invoices/{id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid invoice id",
		})
	}

	var req models.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.invoiceService.UpdateInvoice(uint(id), &req); err != nil {
		if errors.Is(err, services.ErrNothingToUpdate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Invoice updated successfully",
	})
}

// DeleteInvoice godoc
// @Summary Delete an invoice and its items
// @Tags Invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid invoice id",
		})
	}

	if err := h.invoiceService.DeleteInvoice(uint(id)); err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Invoice deleted successfully",
	})
}
