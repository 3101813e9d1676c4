package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetOverview godoc
// @Summary Dashboard overview totals
// @Tags Stats
// @Produce json
// @Success 200 {object} models.StatsOverview
// @Router /api/stats/overview [get]
func (h *StatsHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.statsService.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching stats: " + err.Error(),
		})
	}
	return c.JSON(overview)
}

// GetPaymentStats godoc
// @Summary Paid vs unpaid counts and amounts
// @Tags Stats
// @Produce json
// @Success 200 {object} models.PaymentStats
// @Router /api/stats/payment-stats [get]
func (h *StatsHandler) GetPaymentStats(c *fiber.Ctx) error {
	stats, err := h.statsService.PaymentStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching payment stats: " + err.Error(),
		})
	}
	return c.JSON(stats)
}

// GetMonthlyRevenue godoc
// @Summary Revenue per month over the last six months
// @Tags Stats
// @Produce json
// @Success 200 {array} models.MonthlyRevenue
// @Router /api/stats/monthly-revenue [get]
func (h *StatsHandler) GetMonthlyRevenue(c *fiber.Ctx) error {
	monthly, err := h.statsService.MonthlyRevenue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching monthly revenue: " + err.Error(),
		})
	}
	return c.JSON(monthly)
}

// GetClientStats godoc
// @Summary Top clients by total spent
// @Tags Stats
// @Produce json
// @Success 200 {array} models.ClientStats
// @Router /api/stats/client-stats [get]
func (h *StatsHandler) GetClientStats(c *fiber.Ctx) error {
	top, err := h.statsService.TopClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching client stats: " + err.Error(),
		})
	}
	return c.JSON(top)
}
