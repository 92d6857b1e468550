package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vedicworks/muhurat-api/internal/domain/audit"
	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
	"github.com/vedicworks/muhurat-api/internal/domain/names"
)

const auditTimeout = 5 * time.Second

// Handler wires the HTTP transport to domain services.
type Handler struct {
	muhuratSvc muhurat.Service
	namesSvc   names.Service
	auditLog   audit.Log
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(muhuratSvc muhurat.Service, namesSvc names.Service, auditLog audit.Log, logger *slog.Logger) *Handler {
	return &Handler{
		muhuratSvc: muhuratSvc,
		namesSvc:   namesSvc,
		auditLog:   auditLog,
		logger:     logger.With("component", "http.handler"),
	}
}

// SuggestMuhurat handles the muhurat suggestion endpoint.
func (h *Handler) SuggestMuhurat(c *gin.Context) {
	var req muhurat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.muhuratSvc.Suggest(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainHTTPError(err, "muhurat_failed"))
		return
	}

	h.recordAudit("/api/v1/muhurat/suggest", req, resp)
	c.JSON(http.StatusOK, resp)
}

// SuggestNames handles the baby name suggestion endpoint.
func (h *Handler) SuggestNames(c *gin.Context) {
	var req names.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.namesSvc.Suggest(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainHTTPError(err, "names_failed"))
		return
	}

	h.recordAudit("/api/v1/names/suggest", req, resp)
	c.JSON(http.StatusOK, resp)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Traits lists the selectable qualities for the dashboard form.
func (h *Handler) Traits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"traits": muhurat.TraitOptions})
}

// recordAudit persists the exchange off the request path.
func (h *Handler) recordAudit(endpoint string, req, resp any) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		h.logger.Warn("audit request marshal failed", "endpoint", endpoint, "error", err)
		return
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		h.logger.Warn("audit response marshal failed", "endpoint", endpoint, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		entry := audit.Entry{
			Endpoint:        endpoint,
			RequestPayload:  string(reqJSON),
			ResponsePayload: string(respJSON),
		}
		if err := h.auditLog.Record(ctx, entry); err != nil {
			h.logger.Warn("audit record failed", "endpoint", endpoint, "error", err)
		}
	}()
}
