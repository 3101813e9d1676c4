package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/models"
	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/services"
)

type MedicineHandler struct {
	medicineService *services.MedicineService
}

func NewMedicineHandler(medicineService *services.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// GetMedicines godoc
// @Summary List all medicines
// @Tags Medicines
// @Produce json
// @Success 200 {array} models.Medicine
// @Router /api/medicines [get]
func (h *MedicineHandler) GetMedicines(c *fiber.Ctx) error {
	return c.JSON(h.medicineService.ListMedicines())
}

// SearchMedicines godoc
// @Summary Search medicines by name, category or manufacturer
// @Tags Medicines
// @Produce json
// @Param q query string false "Substring to match, case-insensitive"
// @Success 200 {array} models.Medicine
// @Router /api/medicines/search [get]
func (h *MedicineHandler) SearchMedicines(c *fiber.Ctx) error {
	return c.JSON(h.medicineService.SearchMedicines(c.Query("q")))
}

// CreateMedicine godoc
// @Summary Create a medicine
// @Tags Medicines
// @Accept json
// @Produce json
// @Param medicine body models.CreateMedicineRequest true "Medicine data"
// @Success 201 {object} models.Medicine
// @Router /api/medicines [post]
func (h *MedicineHandler) CreateMedicine(c *fiber.Ctx) error {
	var req models.CreateMedicineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	medicine := h.medicineService.CreateMedicine(&req)
	return c.Status(fiber.StatusCreated).JSON(medicine)
}

// UpdateMedicine godoc
// @Summary Merge updates into a medicine
// @Tags Medicines
// @Accept json
// @Produce json
// @Param id path int true "Medicine ID"
// @Param medicine body models.UpdateMedicineRequest true "Fields to update"
// @Success 200 {object} models.Medicine
// @Failure 404 {object} map[string]interface{}
// @Router /api/medicines/{id} [put]
func (h *MedicineHandler) UpdateMedicine(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": services.ErrMedicineNotFound.Error(),
		})
	}

	var req models.UpdateMedicineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	medicine, err := h.medicineService.UpdateMedicine(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(medicine)
}

// DeleteMedicine godoc
// @Summary Delete a medicine
// @Tags Medicines
// @Param id path int true "Medicine ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/medicines/{id} [delete]
func (h *MedicineHandler) DeleteMedicine(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": services.ErrMedicineNotFound.Error(),
		})
	}

	if err := h.medicineService.DeleteMedicine(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
