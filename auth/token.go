// Package auth issues and verifies the bearer tokens that identify a
// signed-in user. The token subject is the user ID, which doubles as
// the Profile ID and the party identity on cases and requests.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"probonex-backend/apperrors"
)

// SessionClaims are the JWT claims carried by a session token
type SessionClaims struct {
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens
type TokenManager struct {
	signingKey []byte
	issuer     string
	tokenTTL   time.Duration
}

// NewTokenManager creates a token manager. The signing key must be kept
// secret; rotating it invalidates all outstanding sessions.
func NewTokenManager(signingKey string, issuer string, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

// Generate issues a signed session token for the given user
func (m *TokenManager) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "could not sign session token")
	}
	return signed, nil
}

// Verify parses and validates a session token and returns the user ID
// it identifies
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.New(apperrors.CodeUnauthorized, "unexpected signing method")
		}
		return m.signingKey, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, apperrors.New(apperrors.CodeUnauthorized, "invalid or expired session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.CodeUnauthorized, "invalid token subject")
	}
	return userID, nil
}
