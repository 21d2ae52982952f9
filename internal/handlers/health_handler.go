package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expenso/internal/errors"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health pings the store.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} response.Envelope "Service is healthy"
// @Failure     503 {object} response.Envelope "Store unreachable"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrUnavailable, err), "Health check failed")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"status": "ok"}, "Service is healthy")
}
