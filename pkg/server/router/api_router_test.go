package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	handlers "github.com/NeuralTrust/ToolFinder/pkg/handlers/http"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/jwt"
	"github.com/NeuralTrust/ToolFinder/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedHandler string

func (h namedHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(string(h))
}

func stubTransport() *handlers.HandlerTransport {
	return &handlers.HandlerTransport{
		GetVersionHandler:        namedHandler("version"),
		ListCategoriesHandler:    namedHandler("categories"),
		GetCategoryHandler:       namedHandler("category"),
		ListTrendingToolsHandler: namedHandler("trending"),
		GetToolHandler:           namedHandler("tool"),
		SearchHandler:            namedHandler("search"),
		CreateSessionHandler:     namedHandler("session"),
		CreateToolHandler:        namedHandler("create"),
		DeleteToolHandler:        namedHandler("delete"),
		IndexToolHandler:         namedHandler("index"),
	}
}

func buildApp(t *testing.T, manager jwt.Manager) *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app := fiber.New()
	mw := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(logger, manager),
	}
	require.NoError(t, NewAPIRouter(mw, stubTransport(), "").BuildRoutes(app))
	return app
}

func TestAPIRouter_PublicRoutes(t *testing.T) {
	app := buildApp(t, jwt.NewJwtManager("secret", time.Minute))

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/version", "version"},
		{http.MethodGet, "/api/v1/categories", "categories"},
		{http.MethodGet, "/api/v1/categories/video", "category"},
		{http.MethodGet, "/api/v1/tools/trending", "trending"},
		{http.MethodGet, "/api/v1/tools/0b6b3f0e-6a3c-4c4a-9a55-0f7a9d3f3c11", "tool"},
		{http.MethodPost, "/api/v1/search", "search"},
		{http.MethodPost, "/api/v1/admin/session", "session"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			buf := make([]byte, 32)
			n, _ := resp.Body.Read(buf)
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestAPIRouter_AdminRoutesRequireToken(t *testing.T) {
	manager := jwt.NewJwtManager("secret", time.Minute)
	app := buildApp(t, manager)
	token, _, err := manager.CreateToken(jwt.AdminSubject)
	require.NoError(t, err)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/tools"},
		{http.MethodDelete, "/api/v1/tools/0b6b3f0e-6a3c-4c4a-9a55-0f7a9d3f3c11"},
		{http.MethodPost, "/api/v1/tools/0b6b3f0e-6a3c-4c4a-9a55-0f7a9d3f3c11/embedding"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			req := httptest.NewRequest(r.method, r.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err = app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}

func TestAPIRouter_RequiresAdminAuth(t *testing.T) {
	err := NewAPIRouter(&middleware.Transport{}, stubTransport(), "").BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, ErrMissingAdminAuth)
}
