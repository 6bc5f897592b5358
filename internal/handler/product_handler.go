package handler

import (
	"strconv"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// POST /product/new
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(c.UserContext(), &req, getOperatorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product.ID)
}

// PUT /product/update/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrProductNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, &req, getOperatorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product.ToResponse())
}

// GET /product/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrProductNotFound)
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product.ToResponse())
}

// GET /product/all
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.ProductResponse, len(products))
	for i := range products {
		responses[i] = products[i].ToResponse()
	}
	return c.JSON(responses)
}

// GET /product/search?name=
func (h *ProductHandler) SearchProduct(c *fiber.Ctx) error {
	product, err := h.service.SearchByName(c.UserContext(), c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product.ToResponse())
}

// PUT /product/increaseStock?name=&amount=
func (h *ProductHandler) IncreaseStock(c *fiber.Ctx) error {
	name, amount, err := stockParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.IncreaseStock(c.UserContext(), name, amount); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DecreaseStock never takes stock below zero: a decrease larger than the
// current stock answers 400 and leaves the row as it was. amount must be
// positive for both stock routes.
// PUT /product/decreaseStock?name=&amount=
func (h *ProductHandler) DecreaseStock(c *fiber.Ctx) error {
	name, amount, err := stockParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.DecreaseStock(c.UserContext(), name, amount); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func stockParams(c *fiber.Ctx) (string, int, error) {
	name := c.Query("name")
	if name == "" {
		return "", 0, fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	amount, err := strconv.Atoi(c.Query("amount"))
	if err != nil {
		return "", 0, fiber.NewError(fiber.StatusBadRequest, "amount must be an integer")
	}
	return name, amount, nil
}
