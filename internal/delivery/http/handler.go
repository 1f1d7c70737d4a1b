package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasoilink/backend/internal/domain"
)

// VoiceOrderInterpreter is the usecase surface the delivery layer needs.
type VoiceOrderInterpreter interface {
	InterpretOrder(ctx context.Context, request *domain.VoiceOrderRequest) (*domain.VoiceOrderResponse, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	orders VoiceOrderInterpreter
}

// NewHandler creates a new HTTP handler
func NewHandler(orders VoiceOrderInterpreter) *Handler {
	return &Handler{orders: orders}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rasoilink-backend",
		"version": "1.0.0",
	})
}

// InterpretOrder converts a transcribed voice command into a structured
// order. "Could not understand" and "no valid items" are 200 responses
// with the appropriate confirmation text - only infrastructure problems
// turn into error statuses.
func (h *Handler) InterpretOrder(c *gin.Context) {
	if h.orders == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Voice order service not configured",
		})
		return
	}

	// Empty or missing text binds fine and flows through to the engine,
	// which classifies it as "could not understand". Only unparseable
	// bodies are rejected here.
	var request domain.VoiceOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	response, err := h.orders.InterpretOrder(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrCatalogAPIFailure), errors.Is(err, domain.ErrEmptyCatalog):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog is currently unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}
