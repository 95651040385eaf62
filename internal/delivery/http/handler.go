package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chronolens/backend/internal/domain"
)

// ConciergeService answers catalog questions
type ConciergeService interface {
	Ask(ctx context.Context, question string) (*domain.AnswerResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	concierge ConciergeService
}

// NewHandler creates a new HTTP handler
func NewHandler(concierge ConciergeService) *Handler {
	return &Handler{concierge: concierge}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "chronolens-backend",
		"version": "1.0.0",
	})
}

// Ask handles concierge questions. Empty questions are client errors;
// anything unexpected surfaces as a generic server error, never a partial
// response.
func (h *Handler) Ask(c *gin.Context) {
	var req domain.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	result, err := h.concierge.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
			return
		}
		log.Printf("[HTTP] ask failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
