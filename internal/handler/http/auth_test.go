package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	loginResp    auth.LoginResponse
	registerResp auth.RegisterResponse
	err          error
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return s.loginResp, s.err
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	return s.registerResp, s.err
}

func (s *stubAuthService) Verify(ctx context.Context, userID string) (*user.User, error) {
	return nil, s.err
}

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	svc := &stubAuthService{
		registerResp: auth.RegisterResponse{
			Token:     "tok-123",
			ExpiresAt: 1700000000,
			User:      auth.UserInfo{ID: "user-1", Name: "Alice", Role: user.RoleEmployee},
		},
	}
	handler := NewAuthHandler(svc)

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()

	handler.Register(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "tok-123", payload["token"])

	u, ok := payload["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user-1", u["id"])
	assert.Equal(t, "Alice", u["name"])
	assert.Equal(t, "employee", u["role"])
}

func TestRegisterInvalidBodyIsBadRequest(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	body := strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()

	handler.Register(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginReturnsTrimmedUser(t *testing.T) {
	svc := &stubAuthService{
		loginResp: auth.LoginResponse{
			Token: "tok-456",
			User:  auth.UserInfo{ID: "user-2", Name: "Bob", Role: user.RoleAdmin},
		},
	}
	handler := NewAuthHandler(svc)

	body := strings.NewReader(`{"email":"bob@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()

	handler.Login(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "tok-456", payload["token"])

	u, ok := payload["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin", u["role"])

	// Only the session projection goes out, not the stored record.
	assert.NotContains(t, u, "email")
	assert.NotContains(t, u, "employee_id")
	assert.NotContains(t, u, "created_at")
}
