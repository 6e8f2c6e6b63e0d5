package handlers

import (
	"net/http"

	"probonex-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestHandler handles HTTP requests for the lawyer-side request inbox
type RequestHandler struct {
	lifecycleService *service.LifecycleService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(lifecycleService *service.LifecycleService) *RequestHandler {
	return &RequestHandler{lifecycleService: lifecycleService}
}

func requestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Pending handles GET /api/requests, the caller's pending case requests
func (h *RequestHandler) Pending(c *gin.Context) {
	requests, err := h.lifecycleService.PendingRequests(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, requests)
}

// Accept handles POST /api/requests/:id/accept
func (h *RequestHandler) Accept(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.AcceptRequest(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "accepted"})
}

// Decline handles POST /api/requests/:id/decline
func (h *RequestHandler) Decline(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.DeclineRequest(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "rejected"})
}
