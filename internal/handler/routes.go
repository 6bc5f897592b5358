package handler

import (
	"go-sales-rest/internal/middleware"
	"go-sales-rest/internal/model"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	Sale      *SaleHandler
	Product   *ProductHandler
	Client    *ClientHandler
	Employee  *EmployeeHandler
	User      *UserHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Role      *RoleHandler
}

// RegisterRoutes mounts the API. Fixed segments are registered before the
// matching :id routes.
func RegisterRoutes(app fiber.Router, h Handlers, guard *middleware.Guard) {
	auth := app.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Post("/validate-token", h.Auth.ValidateToken)
	auth.Get("/roles", h.Role.GetRoles)

	sale := app.Group("/sale")
	sale.Post("/new", guard.Require(model.PrivSaleCreate), h.Sale.CreateSale)
	sale.Get("/all", h.Sale.GetSales)
	sale.Get("/export", guard.Authenticated(), h.Sale.ExportSales)
	sale.Get("/product/:productId", h.Sale.GetSalesByProduct)
	sale.Get("/client/:clientId", h.Sale.GetSalesByClient)
	sale.Get("/:id", h.Sale.GetSale)

	product := app.Group("/product")
	product.Get("/all", h.Product.GetProducts)
	product.Get("/search", h.Product.SearchProduct)
	product.Post("/new", guard.Require(model.PrivProductWrite), h.Product.CreateProduct)
	product.Put("/update/:id", guard.Require(model.PrivProductWrite), h.Product.UpdateProduct)
	product.Put("/increaseStock", guard.Require(model.PrivProductWrite), h.Product.IncreaseStock)
	product.Put("/decreaseStock", guard.Require(model.PrivProductWrite), h.Product.DecreaseStock)
	product.Get("/:id", h.Product.GetProduct)

	client := app.Group("/client")
	client.Post("/new", guard.Require(model.PrivClientWrite), h.Client.CreateClient)
	client.Put("/update/:id", guard.Require(model.PrivClientWrite), h.Client.UpdateClient)
	client.Get("/:id", h.Client.GetClient)

	employee := app.Group("/employee")
	employee.Get("/", h.Employee.GetEmployees)
	employee.Post("/new", guard.Require(model.PrivEmployeeWrite), h.Employee.CreateEmployee)
	employee.Put("/update/:id", guard.Require(model.PrivEmployeeWrite), h.Employee.UpdateEmployee)
	employee.Get("/:id", h.Employee.GetEmployee)

	user := app.Group("/user")
	user.Get("/all", h.User.GetUsers)
	user.Get("/search", h.User.SearchUsers)
	user.Post("/new", guard.Require(model.PrivUserWrite), h.User.CreateUser)
	user.Get("/:id", h.User.GetUser)

	app.Get("/dashboard/stats", guard.Authenticated(), h.Dashboard.GetDashboardStats)
}
