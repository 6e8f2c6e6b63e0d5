package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"probonex-backend/apperrors"
	"probonex-backend/auth"
)

func newAuthService(m *memoryStore) *AuthService {
	return NewAuthService(
		AuthWithUserStore(m),
		AuthWithTokenManager(auth.NewTokenManager("test-secret", "probonex", time.Hour)),
		AuthWithBcryptCost(bcrypt.MinCost),
	)
}

func TestSignUpAndSignIn(t *testing.T) {
	m := newMemoryStore()
	svc := newAuthService(m)
	ctx := context.Background()

	signedUp, err := svc.SignUp(ctx, SignUpRequest{Email: "Ada@Example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", signedUp.User.Email)
	assert.NotEmpty(t, signedUp.Token)

	signedIn, err := svc.SignIn(ctx, SignInRequest{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, signedIn.User.ID)
	assert.NotEmpty(t, signedIn.Token)
}

func TestSignUpValidation(t *testing.T) {
	m := newMemoryStore()
	svc := newAuthService(m)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpRequest{Email: "not-an-email", Password: "long enough"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	_, err = svc.SignUp(ctx, SignUpRequest{Email: "ada@example.com", Password: "short"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	m := newMemoryStore()
	svc := newAuthService(m)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpRequest{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, SignUpRequest{Email: "ada@example.com", Password: "correct horse"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
}

func TestSignInWrongCredentials(t *testing.T) {
	m := newMemoryStore()
	svc := newAuthService(m)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpRequest{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	// Unknown accounts and wrong passwords are indistinguishable
	_, err = svc.SignIn(ctx, SignInRequest{Email: "ada@example.com", Password: "wrong horse"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))

	_, err = svc.SignIn(ctx, SignInRequest{Email: "nobody@example.com", Password: "correct horse"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}

func TestChangePassword(t *testing.T) {
	m := newMemoryStore()
	svc := newAuthService(m)
	ctx := context.Background()

	signedUp, err := svc.SignUp(ctx, SignUpRequest{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, signedUp.User.ID, ChangePasswordRequest{
		CurrentPassword: "wrong horse",
		NewPassword:     "battery staple",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))

	err = svc.ChangePassword(ctx, signedUp.User.ID, ChangePasswordRequest{
		CurrentPassword: "correct horse",
		NewPassword:     "short",
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	err = svc.ChangePassword(ctx, signedUp.User.ID, ChangePasswordRequest{
		CurrentPassword: "correct horse",
		NewPassword:     "battery staple",
	})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, SignInRequest{Email: "ada@example.com", Password: "correct horse"})
	require.Error(t, err)

	signedIn, err := svc.SignIn(ctx, SignInRequest{Email: "ada@example.com", Password: "battery staple"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, signedIn.User.ID)
}
