package handlers

import (
	"io"
	"net/http"
	"time"

	"probonex-backend/models"
	"probonex-backend/service"
	"probonex-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxPictureSize = 5 * 1024 * 1024 // 5MB

// ProfileHandler handles HTTP requests for profiles and past cases
type ProfileHandler struct {
	profileService *service.ProfileService
	pictures       storage.Storage
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService, pictures storage.Storage) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		pictures:       pictures,
	}
}

// OnboardRequest represents the request body for onboarding
type OnboardRequest struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	City     string `json:"city"`
	State    string `json:"state"`

	CongressionalDistrict   string   `json:"congressional_district"`
	Bio                     string   `json:"bio"`
	SpecialtiesConstitution []string `json:"specialties_constitution"`
	SpecialtiesUDHR         []string `json:"specialties_udhr"`
	ContactEmail            string   `json:"contact_email"`
	PhoneNumber             string   `json:"phone_number"`

	Pronouns string `json:"pronouns"`
	Website  string `json:"website"`
}

// Onboard handles POST /api/profile
func (h *ProfileHandler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.profileService.Onboard(c.Request.Context(), service.OnboardRequest{
		UserID:                  currentUserID(c),
		Role:                    models.Role(req.Role),
		Username:                req.Username,
		FullName:                req.FullName,
		City:                    req.City,
		State:                   req.State,
		CongressionalDistrict:   req.CongressionalDistrict,
		Bio:                     req.Bio,
		SpecialtiesConstitution: req.SpecialtiesConstitution,
		SpecialtiesUDHR:         req.SpecialtiesUDHR,
		ContactEmail:            req.ContactEmail,
		PhoneNumber:             req.PhoneNumber,
		Pronouns:                req.Pronouns,
		Website:                 req.Website,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, result.Profile)
}

// GetMe handles GET /api/profile
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, profile)
}

// UpdateMeRequest represents the request body for editing one's profile
type UpdateMeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	City     string `json:"city"`
	State    string `json:"state"`

	CongressionalDistrict   string   `json:"congressional_district"`
	Bio                     string   `json:"bio"`
	SpecialtiesConstitution []string `json:"specialties_constitution"`
	SpecialtiesUDHR         []string `json:"specialties_udhr"`
	ContactEmail            string   `json:"contact_email"`
	PhoneNumber             string   `json:"phone_number"`

	Pronouns string `json:"pronouns"`
	Website  string `json:"website"`
}

// UpdateMe handles PUT /api/profile
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), service.UpdateProfileRequest{
		UserID:                  currentUserID(c),
		FullName:                req.FullName,
		City:                    req.City,
		State:                   req.State,
		CongressionalDistrict:   req.CongressionalDistrict,
		Bio:                     req.Bio,
		SpecialtiesConstitution: req.SpecialtiesConstitution,
		SpecialtiesUDHR:         req.SpecialtiesUDHR,
		ContactEmail:            req.ContactEmail,
		PhoneNumber:             req.PhoneNumber,
		Pronouns:                req.Pronouns,
		Website:                 req.Website,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, profile)
}

// GetByUsername handles GET /api/profiles/:username, the public
// profile page, with past cases for lawyers
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	result, err := h.profileService.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"profile":    result.Profile,
		"past_cases": result.PastCases,
	})
}

// UploadPicture handles POST /api/profile/picture
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	fileHeader, err := c.FormFile("picture")
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "picture file is required")
		return
	}
	if fileHeader.Size > maxPictureSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE", "picture exceeds 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read picture")
		return
	}
	defer file.Close()

	userID := currentUserID(c)
	key, err := h.pictures.Put(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		respondError(c, http.StatusBadRequest, "UNSUPPORTED_IMAGE", err.Error())
		return
	}

	profile, err := h.profileService.SetProfilePicture(c.Request.Context(), userID, "/api/pictures/"+key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, profile)
}

// ServePicture handles GET /api/pictures/*key
func (h *ProfileHandler) ServePicture(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	// Only keys the upload path can produce are servable; anything
	// else could address files outside the picture tree.
	if !storage.ValidPictureKey(key) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "picture not found")
		return
	}

	contentType, err := storage.ImageContentType(key)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "picture not found")
		return
	}

	reader, err := h.pictures.Get(c.Request.Context(), key)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "picture not found")
		return
	}
	defer reader.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

// AddPastCaseRequest represents the request body for a past case entry
type AddPastCaseRequest struct {
	VictimName      string     `json:"victim_name" binding:"required"`
	CaseDescription string     `json:"case_description" binding:"required"`
	Location        string     `json:"location" binding:"required"`
	Outcome         string     `json:"outcome"`
	DateCompleted   *time.Time `json:"date_completed"`
}

// AddPastCase handles POST /api/profile/past-cases
func (h *ProfileHandler) AddPastCase(c *gin.Context) {
	var req AddPastCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	pc := &models.PastCase{
		LawyerID:        currentUserID(c),
		VictimName:      req.VictimName,
		CaseDescription: req.CaseDescription,
		Location:        req.Location,
		DateCompleted:   req.DateCompleted,
	}
	if req.Outcome != "" {
		pc.Outcome = &req.Outcome
	}

	created, err := h.profileService.AddPastCase(c.Request.Context(), pc)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// DeletePastCase handles DELETE /api/profile/past-cases/:id
func (h *ProfileHandler) DeletePastCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid past case ID format")
		return
	}

	if err := h.profileService.DeletePastCase(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
