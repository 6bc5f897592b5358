package handler

import (
	"strconv"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles user creation
// POST /user/new
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req model.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.userService.CreateUser(c.UserContext(), &req, getOperatorID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.ID)
}

// GetUsers returns all users
// GET /user/all
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(model.ToUserResponses(users))
}

// GetUser returns a single user by ID
// GET /user/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"), "id", service.ErrUserNotFound)
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.ToResponse())
}

// SearchUsers filters by ?name= and/or ?older-than=
// GET /user/search
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	args := c.Context().QueryArgs()

	var name *string
	if args.Has("name") {
		v := c.Query("name")
		name = &v
	}

	var olderThan *int
	if args.Has("older-than") {
		v, err := strconv.Atoi(c.Query("older-than"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "older-than must be an integer"})
		}
		olderThan = &v
	}

	users, err := h.userService.SearchUsers(c.UserContext(), name, olderThan)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.ToUserResponses(users))
}
