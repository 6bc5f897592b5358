package middleware

import (
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
)

// Tracing opens a server span per request through otelfiber. Spans are named
// "<METHOD> <route>" so /sale/7 and /sale/8 share one name.
func Tracing() fiber.Handler {
	return otelfiber.Middleware(otelfiber.WithSpanNameFormatter(routeSpanName))
}

func routeSpanName(c *fiber.Ctx) string {
	if route := c.Route(); route != nil && route.Path != "" {
		return c.Method() + " " + route.Path
	}
	return c.Method() + " " + c.Path()
}
