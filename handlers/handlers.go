// Package handlers exposes the HTTP API. Every response uses the same
// envelope: {"success": true, "data": ...} or
// {"success": false, "error": {"code", "message"}}.
package handlers

import (
	"net/http"

	"probonex-backend/apperrors"

	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError translates a service-layer error into the right
// HTTP status and envelope code
func respondServiceError(c *gin.Context, err error) {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeValidation:
		respondError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	case apperrors.CodeUnauthorized:
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case apperrors.CodeForbidden:
		respondError(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case apperrors.CodeNotFound:
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case apperrors.CodeConflict:
		respondError(c, http.StatusConflict, "CONFLICT", err.Error())
	case apperrors.CodeLimitExceeded:
		respondError(c, http.StatusConflict, "LIMIT_EXCEEDED", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
	}
}
