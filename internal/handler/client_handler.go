package handler

import (
	"go-sales-rest/internal/model"
	"go-sales-rest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

// POST /client/new
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req model.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.CreateClient(c.UserContext(), &req, getOperatorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client.ID)
}

// GET /client/:id
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrClientNotFound)
	if err != nil {
		return respondError(c, err)
	}

	client, err := h.service.GetClient(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client.ToResponse())
}

// PUT /client/update/:id
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrClientNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req model.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.UpdateClient(c.UserContext(), id, &req, getOperatorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client.ToResponse())
}
