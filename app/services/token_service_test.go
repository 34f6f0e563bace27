package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-key-32-chars-min!!"

func newTestService(t *testing.T, accessTTL, refreshTTL time.Duration) TokenService {
	t.Helper()
	svc, err := NewTokenService(accessTTL, refreshTTL, "college-cms", "admin-panel", false, "", "", testSecret)
	require.NoError(t, err)
	return svc
}

func TestTokenGenerationAndValidation(t *testing.T) {
	svc := newTestService(t, 15*time.Minute, 24*time.Hour)

	access, refresh, err := svc.GenerateAdminTokens(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateAdminToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), accessClaims.AdminID)
	assert.Equal(t, "admin", accessClaims.Role)
	assert.Equal(t, "access", accessClaims.TokenType)
	assert.NotEmpty(t, accessClaims.TokenID)

	refreshClaims, err := svc.ValidateAdminToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
	assert.NotEqual(t, accessClaims.TokenID, refreshClaims.TokenID)
	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt))
}

func TestTokenValidationRejectsGarbage(t *testing.T) {
	svc := newTestService(t, 15*time.Minute, 24*time.Hour)

	_, err := svc.ValidateAdminToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.ValidateAdminToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenValidationRejectsForeignSignature(t *testing.T) {
	svc := newTestService(t, 15*time.Minute, 24*time.Hour)

	other, err := NewTokenService(15*time.Minute, 24*time.Hour, "college-cms", "admin-panel", false, "", "", "a-completely-different-32-char-key!")
	require.NoError(t, err)

	access, _, err := other.GenerateAdminTokens(1, "admin")
	require.NoError(t, err)

	_, err = svc.ValidateAdminToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpiry(t *testing.T) {
	svc := newTestService(t, -time.Minute, 24*time.Hour)

	access, _, err := svc.GenerateAdminTokens(7, "admin")
	require.NoError(t, err)

	_, err = svc.ValidateAdminToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestService(t, 15*time.Minute, 24*time.Hour)

	access, refresh, err := svc.GenerateAdminTokens(9, "super-admin")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(access))
	assert.True(t, svc.IsTokenRevoked(access))

	_, err = svc.ValidateAdminToken(access)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// Revoking one token leaves the other usable
	assert.False(t, svc.IsTokenRevoked(refresh))
	_, err = svc.ValidateAdminToken(refresh)
	assert.NoError(t, err)
}

func TestRevokingInvalidTokenFails(t *testing.T) {
	svc := newTestService(t, 15*time.Minute, 24*time.Hour)

	err := svc.RevokeToken("bogus")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
