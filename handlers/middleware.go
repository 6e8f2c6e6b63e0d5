package handlers

import (
	"net/http"
	"strings"

	"probonex-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextUserID = "userID"

// RequireAuth verifies the bearer token and stores the caller's user ID
// in the request context
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired session token")
			c.Abort()
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated caller's ID set by RequireAuth
func currentUserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(contextUserID)
	userID, _ := id.(uuid.UUID)
	return userID
}
