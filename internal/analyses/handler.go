package analyses

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyzer"
	"ats-backend/internal/documents"
	"ats-backend/internal/jobroles"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group. Extra
// middleware (rate limiting) applies to the start route only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, startMiddleware ...gin.HandlerFunc) {
	startChain := append(append([]gin.HandlerFunc{}, startMiddleware...), h.start)
	rg.POST("/documents/:id/analyze", startChain...)
	rg.GET("/analyses", h.list)
	rg.GET("/analyses/:id", h.get)
	rg.GET("/roles", h.roles)
}

// AnalysisResponse is the outward-facing representation of an analysis job.
type AnalysisResponse struct {
	AnalysisID    string           `json:"analysisId"`
	DocumentID    string           `json:"documentId"`
	Category      string           `json:"category"`
	Role          string           `json:"role"`
	Status        string           `json:"status"`
	Report        *analyzer.Report `json:"report,omitempty"`
	ErrorCode     string           `json:"errorCode,omitempty"`
	Retryable     bool             `json:"retryable,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
}

func toResponse(analysis Analysis) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID:  analysis.ID,
		DocumentID:  analysis.DocumentID,
		Category:    analysis.Category,
		Role:        analysis.Role,
		Status:      analysis.Status,
		Report:      analysis.Report,
		ErrorCode:   analysis.ErrorCode,
		Retryable:   analysis.Retryable,
		CreatedAt:   analysis.CreatedAt,
		CompletedAt: analysis.CompletedAt,
	}
}

type startRequest struct {
	Category string `json:"category"`
	Role     string `json:"role"`
}

func (h *Handler) start(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)
	documentID := c.Param("id")

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Category == "" || req.Role == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "category and role are required", nil)
		return
	}

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	analysis, err := h.Svc.Start(ctx, clientID, documentID, req.Category, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, jobroles.ErrRoleNotFound):
			respond.Error(c, http.StatusBadRequest, "unknown_role", err.Error(), nil)
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start analysis", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.JSON(c, http.StatusAccepted, toResponse(analysis))
}

func (h *Handler) get(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	analysis, err := h.Svc.Get(c.Request.Context(), clientID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(analysis))
}

func (h *Handler) list(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), clientID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	resp := make([]AnalysisResponse, 0, len(items))
	for _, analysis := range items {
		resp = append(resp, toResponse(analysis))
	}
	respond.JSON(c, http.StatusOK, resp)
}

// roles exposes the configured job-role catalog so callers can populate
// pickers without hardcoding it.
func (h *Handler) roles(c *gin.Context) {
	catalog := h.Svc.Roles
	out := make(map[string][]string, len(catalog))
	for _, category := range catalog.Categories() {
		out[category] = catalog.Roles(category)
	}
	respond.JSON(c, http.StatusOK, out)
}
