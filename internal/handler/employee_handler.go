package handler

import (
	"go-sales-rest/internal/model"
	"go-sales-rest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	service service.EmployeeService
}

func NewEmployeeHandler(s service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

// POST /employee/new
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req model.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employee, err := h.service.CreateEmployee(c.UserContext(), &req, getOperatorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee.ID)
}

// GET /employee/:id
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrEmployeeNotFound)
	if err != nil {
		return respondError(c, err)
	}

	employee, err := h.service.GetEmployee(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee.ToResponse())
}

// PUT /employee/update/:id
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrEmployeeNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req model.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employee, err := h.service.UpdateEmployee(c.UserContext(), id, &req, getOperatorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee.ToResponse())
}

// GetEmployees lists every employee, or only those of ?department=.
// GET /employee
func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.ListEmployees(c.UserContext(), c.Query("department"))
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]model.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = employees[i].ToResponse()
	}
	return c.JSON(responses)
}
