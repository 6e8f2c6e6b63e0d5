package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probonex-backend/apperrors"
	"probonex-backend/models"
)

func newContactService(m *memoryStore) *ContactService {
	return NewContactService(
		ContactWithCaseStore(caseStore{m}),
		ContactWithContactStore(contactStore{m}),
	)
}

func TestShareContactAssignedLawyerOnly(t *testing.T) {
	m := newMemoryStore()
	svc := newContactService(m)
	ctx := context.Background()

	victim := seedProfile(m, models.RoleVictim, "victim", "CA", "")
	lawyer := seedProfile(m, models.RoleLawyer, "lawyer", "CA", "12")
	other := seedProfile(m, models.RoleLawyer, "other", "CA", "12")
	c := seedCase(m, victim.ID, models.CaseStatusOpen, &lawyer.ID)

	_, err := svc.ShareContact(ctx, c.ID, other.ID, "other@example.com", "")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	info, err := svc.ShareContact(ctx, c.ID, lawyer.ID, "lawyer@example.com", "")
	require.NoError(t, err)
	require.NotNil(t, info.Email)
	assert.Equal(t, "lawyer@example.com", *info.Email)
	assert.Equal(t, victim.ID, info.VictimID)
}

func TestShareContactRequiresEmailOrPhone(t *testing.T) {
	m := newMemoryStore()
	svc := newContactService(m)
	ctx := context.Background()

	victim := seedProfile(m, models.RoleVictim, "victim", "CA", "")
	lawyer := seedProfile(m, models.RoleLawyer, "lawyer", "CA", "12")
	c := seedCase(m, victim.ID, models.CaseStatusOpen, &lawyer.ID)

	_, err := svc.ShareContact(ctx, c.ID, lawyer.ID, "", "")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestShareContactOverwritesPreviousDetails(t *testing.T) {
	m := newMemoryStore()
	svc := newContactService(m)
	ctx := context.Background()

	victim := seedProfile(m, models.RoleVictim, "victim", "CA", "")
	lawyer := seedProfile(m, models.RoleLawyer, "lawyer", "CA", "12")
	c := seedCase(m, victim.ID, models.CaseStatusOpen, &lawyer.ID)

	_, err := svc.ShareContact(ctx, c.ID, lawyer.ID, "old@example.com", "")
	require.NoError(t, err)
	_, err = svc.ShareContact(ctx, c.ID, lawyer.ID, "new@example.com", "+1-555-0100")
	require.NoError(t, err)

	info, err := svc.GetContact(ctx, c.ID, victim.ID)
	require.NoError(t, err)
	require.NotNil(t, info.Email)
	assert.Equal(t, "new@example.com", *info.Email)
	require.NotNil(t, info.PhoneNumber)
	assert.Equal(t, "+1-555-0100", *info.PhoneNumber)
}

func TestGetContactParticipantsOnly(t *testing.T) {
	m := newMemoryStore()
	svc := newContactService(m)
	ctx := context.Background()

	victim := seedProfile(m, models.RoleVictim, "victim", "CA", "")
	lawyer := seedProfile(m, models.RoleLawyer, "lawyer", "CA", "12")
	stranger := seedProfile(m, models.RoleVictim, "stranger", "CA", "")
	c := seedCase(m, victim.ID, models.CaseStatusOpen, &lawyer.ID)

	_, err := svc.ShareContact(ctx, c.ID, lawyer.ID, "lawyer@example.com", "")
	require.NoError(t, err)

	_, err = svc.GetContact(ctx, c.ID, stranger.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	info, err := svc.GetContact(ctx, c.ID, victim.ID)
	require.NoError(t, err)
	assert.Equal(t, lawyer.ID, info.LawyerID)
}

func TestGetContactBeforeAnyShared(t *testing.T) {
	m := newMemoryStore()
	svc := newContactService(m)
	ctx := context.Background()

	victim := seedProfile(m, models.RoleVictim, "victim", "CA", "")
	lawyer := seedProfile(m, models.RoleLawyer, "lawyer", "CA", "12")
	c := seedCase(m, victim.ID, models.CaseStatusOpen, &lawyer.ID)

	_, err := svc.GetContact(ctx, c.ID, victim.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
