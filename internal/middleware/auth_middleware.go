package middleware

import (
	"log"
	"strconv"
	"strings"

	"go-sales-rest/internal/service"

	"github.com/gofiber/fiber/v2"
)

// authenticate validates the bearer token and stores the operator in Locals.
// On failure it writes the 401 response and reports false.
func authenticate(c *fiber.Ctx, authService service.AuthService) (bool, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return false, c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return false, c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
	}

	// Signature, expiry and the stored token version are all checked here.
	res, err := authService.ValidateToken(c.UserContext(), parts[1])
	if err != nil {
		if !service.IsAuthError(err) {
			log.Printf("token validation failed: %v", err)
			return false, c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return false, c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	c.Locals("operator_id", strconv.FormatUint(uint64(res.Operator.ID), 10))
	c.Locals("operator_email", res.Operator.Email)
	c.Locals("operator_name", res.Operator.FullName)
	c.Locals("operator_privileges", res.Privileges)
	return true, nil
}

func hasPrivilege(c *fiber.Ctx, required string) bool {
	privileges, ok := c.Locals("operator_privileges").([]string)
	if !ok {
		return false
	}
	for _, p := range privileges {
		if p == required {
			return true
		}
	}
	return false
}

// RequireAuth is middleware that validates the JWT and sets operator info in context
func RequireAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := authenticate(c, authService); !ok {
			return err
		}
		return c.Next()
	}
}

// Guard builds per-route protection. When auth is disabled every guard lets
// the request through untouched.
type Guard struct {
	authService service.AuthService
	enabled     bool
}

func NewGuard(authService service.AuthService, enabled bool) *Guard {
	return &Guard{authService: authService, enabled: enabled}
}

func passThrough(c *fiber.Ctx) error { return c.Next() }

// Authenticated only requires a valid session.
func (g *Guard) Authenticated() fiber.Handler {
	if !g.enabled {
		return passThrough
	}
	return RequireAuth(g.authService)
}

// Require authenticates the request and checks one privilege.
func (g *Guard) Require(privilege string) fiber.Handler {
	if !g.enabled {
		return passThrough
	}
	return func(c *fiber.Ctx) error {
		if ok, err := authenticate(c, g.authService); !ok {
			return err
		}
		if !hasPrivilege(c, privilege) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + privilege + "' privilege",
			})
		}
		return c.Next()
	}
}
