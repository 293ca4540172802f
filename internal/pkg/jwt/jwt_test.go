package jwt

import (
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDecodeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "240h")

	employeeID := "emp-1"
	token, expiresAt, err := svc.GenerateToken("user-1", user.RoleEmployee, &employeeID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 240h expiry, allow a minute of slack
	expected := time.Now().Add(240 * time.Hour).Unix()
	assert.InDelta(t, expected, expiresAt, 60)

	principal, err := svc.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, user.RoleEmployee, principal.Role)
	require.NotNil(t, principal.EmployeeID)
	assert.Equal(t, "emp-1", *principal.EmployeeID)
	assert.False(t, principal.IsAdmin())
}

func TestGenerateTokenWithoutEmployee(t *testing.T) {
	svc := NewJWTService("test-secret", "240h")

	token, _, err := svc.GenerateToken("user-2", user.RoleAdmin, nil)
	require.NoError(t, err)

	principal, err := svc.DecodeToken(token)
	require.NoError(t, err)
	assert.Nil(t, principal.EmployeeID)
	assert.True(t, principal.IsAdmin())
}

func TestDecodeTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "240h")
	verifier := NewJWTService("secret-b", "240h")

	token, _, err := issuer.GenerateToken("user-1", user.RoleAdmin, nil)
	require.NoError(t, err)

	_, err = verifier.DecodeToken(token)
	assert.Error(t, err)
}

func TestPrincipalFromClaimsMissingFields(t *testing.T) {
	_, err := PrincipalFromClaims(map[string]interface{}{})
	assert.Error(t, err)

	_, err = PrincipalFromClaims(map[string]interface{}{ClaimUserID: "user-1"})
	assert.Error(t, err)
}

func TestGenerateTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "10d")

	_, _, err := svc.GenerateToken("user-1", user.RoleAdmin, nil)
	assert.Error(t, err)
}
