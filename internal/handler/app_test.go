package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-sales-rest/internal/middleware"
	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/internal/service"
	"go-sales-rest/pkg/database"
	"go-sales-rest/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testApp struct {
	app  *fiber.App
	db   *gorm.DB
	auth service.AuthService
}

func newTestApp(t *testing.T, authRequired bool) *testApp {
	t.Helper()
	db := database.NewTestDB(t)

	productRepo := repository.NewProductRepo(db)
	clientRepo := repository.NewClientRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	authService := service.NewAuthService(repository.NewOperatorRepo(db), jwt.NewManager("handler-test", time.Hour))

	h := Handlers{
		Sale:      NewSaleHandler(service.NewSaleService(productRepo, clientRepo, saleRepo, db, nil), service.NewReportService(saleRepo)),
		Product:   NewProductHandler(service.NewProductService(productRepo, nil)),
		Client:    NewClientHandler(service.NewClientService(clientRepo)),
		Employee:  NewEmployeeHandler(service.NewEmployeeService(repository.NewEmployeeRepo(db))),
		User:      NewUserHandler(service.NewUserService(repository.NewUserRepo(db))),
		Auth:      NewAuthHandler(authService),
		Dashboard: NewDashboardHandler(service.NewDashboardService(saleRepo)),
		Role:      NewRoleHandler(model.RolePrivileges),
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, h, middleware.NewGuard(authService, authRequired))
	return &testApp{app: app, db: db, auth: authService}
}

func (a *testApp) do(t *testing.T, method, target, body string, headers ...string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(raw)
}

func (a *testApp) seedProduct(t *testing.T, name, price string, stock int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	require.NoError(t, repository.NewProductRepo(a.db).Create(context.Background(), p))
	return p
}

func (a *testApp) seedClient(t *testing.T, email string) *model.Client {
	t.Helper()
	c := &model.Client{Name: "Ana", Surname: "Lopez", Email: email, Phone: "600", Address: "Calle 1"}
	require.NoError(t, repository.NewClientRepo(a.db).Create(context.Background(), c))
	return c
}

func (a *testApp) stock(t *testing.T, id uint) int {
	t.Helper()
	p, err := repository.NewProductRepo(a.db).FindByID(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func decodeJSON(t *testing.T, body string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v), body)
}
