package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// principalFrom extracts the verified token claims from the request context.
func principalFrom(r *http.Request) (jwt.Principal, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return jwt.Principal{}, auth.ErrInvalidToken
	}
	return jwt.PrincipalFromClaims(claims)
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	loginResp, err := h.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Login(w, loginResp.Token, loginResp.User)
}

// Register implements AuthHandler.
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		// Registration surfaces validation problems as a plain 400
		response.BadRequest(w, err.Error(), nil)
		return
	}

	registerResp, err := h.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Registered(w, registerResp.Token, registerResp.User)
}

// Verify implements AuthHandler.
func (h *AuthHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	userData, err := h.authService.Verify(r.Context(), principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, userData)
}
