package handler

import (
	"errors"
	"log"
	"strconv"

	"go-sales-rest/internal/service"

	"github.com/gofiber/fiber/v2"
)

// getOperatorID returns the authenticated operator id set by the auth middleware.
func getOperatorID(c *fiber.Ctx) string {
	operatorID, ok := c.Locals("operator_id").(string)
	if !ok || operatorID == "" {
		return "system" // auth disabled or public route
	}
	return operatorID
}

// parseRef reads an entity id. Zero and negative ids parse to 0, which no
// stored row has, so the lookup reports the entity as missing.
func parseRef(raw, field string) (uint, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &service.InvalidArgumentError{Field: field, Reason: "must be an integer"}
	}
	if id <= 0 {
		return 0, nil
	}
	return uint(id), nil
}

// parseID is parseRef for path ids, answering notFound for ids below 1.
func parseID(raw, field string, notFound error) (uint, error) {
	id, err := parseRef(raw, field)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, notFound
	}
	return id, nil
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var nf *service.NotFoundError
	var ia *service.InvalidArgumentError
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &nf):
		return fiber.StatusNotFound
	case errors.As(err, &ia), errors.Is(err, service.ErrInsufficientStock):
		return fiber.StatusBadRequest
	case errors.As(err, &conflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// ErrorHandler renders errors that escape a handler, such as fiber's own 404/405.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
