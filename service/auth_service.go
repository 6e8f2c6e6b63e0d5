package service

import (
	"context"
	"errors"
	"strings"

	"probonex-backend/apperrors"
	"probonex-backend/auth"
	"probonex-backend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AuthService handles sign-up and sign-in
type AuthService struct {
	users      UserStore
	tokens     *auth.TokenManager
	bcryptCost int
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// AuthWithTokenManager sets the token manager
func AuthWithTokenManager(tokens *auth.TokenManager) AuthServiceOption {
	return func(s *AuthService) {
		s.tokens = tokens
	}
}

// AuthWithBcryptCost overrides the bcrypt cost, mainly to keep tests fast
func AuthWithBcryptCost(cost int) AuthServiceOption {
	return func(s *AuthService) {
		s.bcryptCost = cost
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUpRequest represents a request to create an account
type SignUpRequest struct {
	Email    string
	Password string
}

// SignUpResult represents the result of creating an account
type SignUpResult struct {
	User  *models.User
	Token string
}

// SignUp creates an authentication user and returns a session token.
// The profile is created separately during onboarding.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResult, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.New(apperrors.CodeValidation, "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.New(apperrors.CodeValidation, "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &SignUpResult{User: user, Token: token}, nil
}

// SignInRequest represents a request to sign in
type SignInRequest struct {
	Email    string
	Password string
}

// SignInResult represents the result of signing in
type SignInResult struct {
	User  *models.User
	Token string
}

// SignIn verifies the credentials and returns a session token
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*SignInResult, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return nil, apperrors.New(apperrors.CodeUnauthorized, "invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "invalid email or password")
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &SignInResult{User: user, Token: token}, nil
}

// ChangePasswordRequest represents a request to replace the account password
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

// ChangePassword verifies the current password and stores a new hash.
// Existing tokens stay valid until expiry.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	if s.users == nil {
		return errors.New("user store not set")
	}
	if len(req.NewPassword) < minPasswordLength {
		return apperrors.New(apperrors.CodeValidation, "password must be at least 8 characters")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return apperrors.New(apperrors.CodeUnauthorized, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// GetUser retrieves the authenticated user's account
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}
	return s.users.GetByID(ctx, id)
}
