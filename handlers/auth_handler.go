package handlers

import (
	"net/http"

	"probonex-backend/apperrors"
	"probonex-backend/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, profileService *service.ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// SignUpRequest represents the request body for signing up
type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUp handles POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.authService.SignUp(c.Request.Context(), service.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// SignInRequest represents the request body for signing in
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), service.SignInRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// ChangePasswordRequest represents the request body for changing the password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword handles PUT /api/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), currentUserID(c), service.ChangePasswordRequest{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"updated": true})
}

// Session handles GET /api/auth/session. It returns the account plus
// the profile when onboarding has happened; a missing profile tells the
// client to send the user to onboarding.
func (h *AuthHandler) Session(c *gin.Context) {
	userID := currentUserID(c)

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	data := gin.H{"user": user}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err == nil {
		data["profile"] = profile
	} else if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, data)
}
