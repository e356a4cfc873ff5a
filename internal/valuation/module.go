// Package valuation provides the property valuation domain module.
package valuation

import (
	apphttp "immowert_backend/internal/http"
	"immowert_backend/internal/valuation/handler"
	"immowert_backend/internal/valuation/repository"
	"immowert_backend/internal/valuation/service"
	"immowert_backend/platform/config"
	"immowert_backend/platform/events"
	"immowert_backend/platform/logger"
	"immowert_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the valuation domain module
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new valuation module with all dependencies wired
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg config.ValuationConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log, cfg.GetEvaluationYear())
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "valuation"
}

// Service returns the service layer for external use
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes. The public form endpoint
// sits behind the per-IP submission rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	valuations := ctx.V1.Group("/valuations")
	if ctx.SubmissionRateLimiter != nil {
		valuations.Use(ctx.SubmissionRateLimiter.RateLimit())
	}
	m.handler.RegisterRoutes(valuations)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
