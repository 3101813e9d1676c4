package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/models"
	"github.com/vetportal/vetportal-backend/internal/modules/invoicing/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// GetClients godoc
// @Summary List all clients
// @Tags Clients
// @Produce json
// @Success 200 {array} models.Client
// @Router /api/clients [get]
func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.clientService.ListClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(clients)
}

// GetClientByID godoc
// @Summary Get client by ID
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]interface{}
// @Router /api/clients/{id} [get]
func (h *ClientHandler) GetClientByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid client id",
		})
	}

	client, err := h.clientService.GetClient(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(client)
}

// CreateClient godoc
// @Summary Create a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body models.CreateClientRequest true "Client data"
// @Success 201 {object} map[string]interface{}
// @Router /api/clients [post]
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req models.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	client, err := h.clientService.CreateClient(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Client added successfully",
		"id":      client.ID,
	})
}

// DeleteClient godoc
// @Summary Delete a client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid client id",
		})
	}

	if err := h.clientService.DeleteClient(uint(id)); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Client deleted successfully",
	})
}
