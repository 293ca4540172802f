package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo user.Repository
	jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		Service:  jwtService,
	}
}

// Login implements auth.AuthService. An unknown email is reported distinctly
// from a wrong password.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrWrongPassword
	}

	token, expiresAt, err := a.GenerateToken(userData.ID, userData.Role, userData.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      auth.NewUserInfo(userData),
	}, nil
}

// Register implements auth.AuthService. A new account is signed in right
// away: the response carries a token alongside the created user.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}

	newUser := &user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := a.userRepo.Create(ctx, newUser); err != nil {
		return auth.RegisterResponse{}, err
	}

	token, expiresAt, err := a.GenerateToken(newUser.ID, newUser.Role, newUser.EmployeeID)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.RegisterResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      auth.NewUserInfo(newUser),
	}, nil
}

// Verify implements auth.AuthService.
func (a *AuthServiceImpl) Verify(ctx context.Context, userID string) (*user.User, error) {
	return a.userRepo.GetByID(ctx, userID)
}
