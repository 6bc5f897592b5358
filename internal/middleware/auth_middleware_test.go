package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/service"
	"go-sales-rest/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*service.LoginResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	return m.Called(ctx, email, oldPassword, newPassword).Error(0)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*service.TokenValidationResponse, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).(*service.TokenValidationResponse)
	return res, args.Error(1)
}

func (m *mockAuthService) SeedAdmin(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

func newGuardedApp(g *Guard, privilege string) *fiber.App {
	app := fiber.New()
	app.Post("/guarded", g.Require(privilege), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("operator_id").(string))
	})
	app.Get("/session", g.Authenticated(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, authorization string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func clerkSession() *service.TokenValidationResponse {
	clerk := model.Operator{Email: "clerk@example.com", RoleCode: model.RoleClerk}
	clerk.ID = 12
	return &service.TokenValidationResponse{Operator: clerk.ToResponse(), Privileges: clerk.Privileges()}
}

func TestGuardDisabledPassesThrough(t *testing.T) {
	auth := &mockAuthService{}
	app := fiber.New()
	app.Post("/guarded", NewGuard(auth, false).Require(model.PrivProductWrite), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	assert.Equal(t, http.StatusCreated, send(t, app, http.MethodPost, "/guarded", ""))
	auth.AssertNotCalled(t, "ValidateToken", mock.Anything, mock.Anything)
}

func TestGuardRequire(t *testing.T) {
	auth := &mockAuthService{}
	auth.On("ValidateToken", mock.Anything, "good").Return(clerkSession(), nil)
	auth.On("ValidateToken", mock.Anything, "stale").Return(nil, service.ErrSessionReplaced)
	auth.On("ValidateToken", mock.Anything, "forged").Return(nil, jwt.ErrInvalidToken)

	sales := newGuardedApp(NewGuard(auth, true), model.PrivSaleCreate)
	assert.Equal(t, http.StatusOK, send(t, sales, http.MethodPost, "/guarded", "Bearer good"))
	assert.Equal(t, http.StatusUnauthorized, send(t, sales, http.MethodPost, "/guarded", ""))
	assert.Equal(t, http.StatusUnauthorized, send(t, sales, http.MethodPost, "/guarded", "Basic good"))
	assert.Equal(t, http.StatusUnauthorized, send(t, sales, http.MethodPost, "/guarded", "Bearer stale"))
	assert.Equal(t, http.StatusUnauthorized, send(t, sales, http.MethodPost, "/guarded", "Bearer forged"))

	products := newGuardedApp(NewGuard(auth, true), model.PrivProductWrite)
	assert.Equal(t, http.StatusForbidden, send(t, products, http.MethodPost, "/guarded", "Bearer good"))
	assert.Equal(t, http.StatusNoContent, send(t, products, http.MethodGet, "/session", "Bearer good"))
	assert.Equal(t, http.StatusUnauthorized, send(t, products, http.MethodGet, "/session", ""))

	auth.AssertExpectations(t)
}

func TestGuardStorageFailureIsNotUnauthorized(t *testing.T) {
	auth := &mockAuthService{}
	auth.On("ValidateToken", mock.Anything, "good").Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	app := newGuardedApp(NewGuard(auth, true), model.PrivSaleCreate)
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "10.0.0.5")
}
