package handlers

import (
	"net/http"

	"probonex-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseHandler handles HTTP requests for cases: creation, dashboards,
// the closure protocol, lawyer matching and contact information
type CaseHandler struct {
	caseService      *service.CaseService
	lifecycleService *service.LifecycleService
	matchService     *service.MatchService
	contactService   *service.ContactService
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(
	caseService *service.CaseService,
	lifecycleService *service.LifecycleService,
	matchService *service.MatchService,
	contactService *service.ContactService,
) *CaseHandler {
	return &CaseHandler{
		caseService:      caseService,
		lifecycleService: lifecycleService,
		matchService:     matchService,
		contactService:   contactService,
	}
}

func caseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid case ID format")
		return uuid.Nil, false
	}
	return id, true
}

// CreateCaseRequest represents the request body for creating a case
type CreateCaseRequest struct {
	Title                  string   `json:"title" binding:"required"`
	Description            string   `json:"description" binding:"required"`
	State                  string   `json:"state" binding:"required"`
	CongressionalDistrict  string   `json:"congressional_district" binding:"required"`
	ConstitutionViolations []string `json:"constitution_violations"`
	UDHRViolations         []string `json:"udhr_violations"`
}

// CreateCase handles POST /api/cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.caseService.CreateCase(c.Request.Context(), service.CreateCaseRequest{
		VictimID:               currentUserID(c),
		Title:                  req.Title,
		Description:            req.Description,
		State:                  req.State,
		CongressionalDistrict:  req.CongressionalDistrict,
		ConstitutionViolations: req.ConstitutionViolations,
		UDHRViolations:         req.UDHRViolations,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, result.Case)
}

// Dashboard handles GET /api/cases: the caller's active and
// successfully closed cases, victim- or lawyer-side by role
func (h *CaseHandler) Dashboard(c *gin.Context) {
	result, err := h.caseService.Dashboard(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"active": result.Active,
		"closed": result.Closed,
	})
}

// GetCase handles GET /api/cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	result, err := h.caseService.GetCase(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

// DeleteCase handles DELETE /api/cases/:id
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.DeleteCase(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

// InitiateClosure handles POST /api/cases/:id/closure
func (h *CaseHandler) InitiateClosure(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.InitiateClosure(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "pending_closure"})
}

// ConfirmClosure handles POST /api/cases/:id/closure/confirm
func (h *CaseHandler) ConfirmClosure(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.ConfirmClosure(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "successfully_closed"})
}

// RejectClosure handles POST /api/cases/:id/closure/reject
func (h *CaseHandler) RejectClosure(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.RejectClosure(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "open"})
}

// DirectClose handles POST /api/cases/:id/close
func (h *CaseHandler) DirectClose(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	if err := h.lifecycleService.DirectClose(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": "closed"})
}

// FindLawyers handles GET /api/cases/:id/lawyers
func (h *CaseHandler) FindLawyers(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	result, err := h.matchService.FindLawyers(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"case":                 result.Case,
		"matches":              result.Matches,
		"requested_lawyer_ids": result.RequestedLawyerIDs,
	})
}

// RequestLawyerRequest represents the request body for requesting a lawyer
type RequestLawyerRequest struct {
	LawyerID string `json:"lawyer_id" binding:"required"`
}

// RequestLawyer handles POST /api/cases/:id/requests
func (h *CaseHandler) RequestLawyer(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	var req RequestLawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	lawyerID, err := uuid.Parse(req.LawyerID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_LAWYER_ID", "Invalid lawyer_id format")
		return
	}

	created, err := h.matchService.RequestLawyer(c.Request.Context(), id, currentUserID(c), lawyerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// ShareContactRequest represents the request body for sharing contact details
type ShareContactRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// ShareContact handles PUT /api/cases/:id/contact
func (h *CaseHandler) ShareContact(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	var req ShareContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	info, err := h.contactService.ShareContact(c.Request.Context(), id, currentUserID(c), req.Email, req.PhoneNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, info)
}

// GetContact handles GET /api/cases/:id/contact
func (h *CaseHandler) GetContact(c *gin.Context) {
	id, ok := caseID(c)
	if !ok {
		return
	}

	info, err := h.contactService.GetContact(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, info)
}
