package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "immowert_backend/internal/http"
	"immowert_backend/platform/config"
	"immowert_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type stubModule struct{}

func (stubModule) Name() string { return "stub" }

func (stubModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/valuations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(&apphttp.App{
		Config:  &config.Config{CORSAllowAll: true},
		Logger:  logger.New("development"),
		Modules: []apphttp.Module{stubModule{}},
	})
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWrongMethodReturns405(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/valuations", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestSecurityHeadersPresent(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff header, got %q", got)
	}
}
