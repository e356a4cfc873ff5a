// Package handler exposes the public valuation endpoints.
package handler

import (
	"net/http"
	"strconv"

	"immowert_backend/internal/valuation/service"
	"immowert_backend/internal/valuation/transport"
	"immowert_backend/platform/httpkit"
	"immowert_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles unauthenticated HTTP requests of the valuation form.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new valuation handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the valuation routes (no auth middleware).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Evaluate)
	rg.GET("", h.ListRecent)
}

// Evaluate handles POST /api/v1/valuations
func (h *Handler) Evaluate(c *gin.Context) {
	var req transport.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.svc.Evaluate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// ListRecent handles GET /api/v1/valuations
func (h *Handler) ListRecent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid limit", nil)
		return
	}

	summaries, err := h.svc.ListRecent(c.Request.Context(), limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"items": summaries})
}
