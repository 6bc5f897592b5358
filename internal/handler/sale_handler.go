package handler

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/service"

	"github.com/gofiber/fiber/v2"
)

// saleMessages are the plain-text bodies returned by the sale endpoints.
var saleMessages = []struct {
	err error
	msg string
}{
	{service.ErrProductNotFound, "Producto no encontrado"},
	{service.ErrClientNotFound, "Cliente no encontrado"},
	{service.ErrInvalidQuantity, "La cantidad debe ser mayor que 0"},
	{service.ErrInsufficientStock, "Stock insuficiente"},
}

type SaleHandler struct {
	service service.SaleService
	reports service.ReportService
}

func NewSaleHandler(s service.SaleService, reports service.ReportService) *SaleHandler {
	return &SaleHandler{service: s, reports: reports}
}

func respondSaleError(c *fiber.Ctx, err error) error {
	for _, m := range saleMessages {
		if errors.Is(err, m.err) {
			return c.Status(statusFor(err)).SendString(m.msg)
		}
	}
	return respondError(c, err)
}

// CreateSale records a sale and answers with its id.
// POST /sale/new?productId=&clientId=&quantity=
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	productID, err := parseRef(c.Query("productId"), "productId")
	if err != nil {
		return respondError(c, err)
	}
	clientID, err := parseRef(c.Query("clientId"), "clientId")
	if err != nil {
		return respondError(c, err)
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "quantity must be an integer"})
	}

	sale, err := h.service.CreateSale(c.UserContext(), productID, clientID, quantity)
	if err != nil {
		return respondSaleError(c, err)
	}
	return c.JSON(sale.ID)
}

// GET /sale/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrSaleNotFound)
	if err != nil {
		return respondError(c, err)
	}

	sale, err := h.service.GetSale(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale.ToResponse())
}

// GET /sale/product/:productId
func (h *SaleHandler) GetSalesByProduct(c *fiber.Ctx) error {
	productID, err := parseID(c.Params("productId"), "productId", service.ErrProductNotFound)
	if err != nil {
		return respondSaleError(c, err)
	}

	sales, err := h.service.GetSalesByProduct(c.UserContext(), productID)
	if err != nil {
		return respondSaleError(c, err)
	}
	return c.JSON(model.ToSaleResponses(sales))
}

// GET /sale/all
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.ToSaleResponses(sales))
}

// GET /sale/client/:clientId
func (h *SaleHandler) GetSalesByClient(c *fiber.Ctx) error {
	clientID, err := parseID(c.Params("clientId"), "clientId", service.ErrClientNotFound)
	if err != nil {
		return respondSaleError(c, err)
	}

	sales, err := h.service.GetSalesByClient(c.UserContext(), clientID)
	if err != nil {
		return respondSaleError(c, err)
	}
	return c.JSON(model.ToSaleResponses(sales))
}

// ExportSales downloads every sale as a spreadsheet.
// GET /sale/export
func (h *SaleHandler) ExportSales(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.reports.ExportSales(c.UserContext(), &buf); err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("20060102"))
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
