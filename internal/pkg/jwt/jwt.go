package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
)

// Claims carried by every access token.
const (
	ClaimUserID     = "user_id"
	ClaimRole       = "role"
	ClaimEmployeeID = "employee_id"
)

type Service interface {
	GenerateToken(userID string, role user.Role, employeeID *string) (token string, expiresAt int64, err error)
	DecodeToken(tokenString string) (Principal, error)
	JWTAuth() *jwtauth.JWTAuth
}

// Principal is the authenticated identity extracted from token claims.
type Principal struct {
	UserID     string
	Role       user.Role
	EmployeeID *string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(userID string, role user.Role, employeeID *string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		ClaimUserID:     userID,
		ClaimRole:       string(role),
		ClaimEmployeeID: j.valueOrNil(employeeID),
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) DecodeToken(tokenString string) (Principal, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return Principal{}, err
	}
	return PrincipalFromClaims(tokenClaims(token))
}

// PrincipalFromClaims builds a Principal from decoded token claims.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, error) {
	userID, ok := claims[ClaimUserID].(string)
	if !ok || userID == "" {
		return Principal{}, jwt.ErrInvalidJWT()
	}

	role, ok := claims[ClaimRole].(string)
	if !ok || role == "" {
		return Principal{}, jwt.ErrInvalidJWT()
	}

	principal := Principal{
		UserID: userID,
		Role:   user.Role(role),
	}

	if employeeID, ok := claims[ClaimEmployeeID].(string); ok && employeeID != "" {
		principal.EmployeeID = &employeeID
	}

	return principal, nil
}

func (j *JWTService) valueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func tokenClaims(token jwt.Token) map[string]interface{} {
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return map[string]interface{}{}
	}
	return claims
}
