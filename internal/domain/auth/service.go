package auth

import (
	"context"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Verify(ctx context.Context, userID string) (*user.User, error)
}
