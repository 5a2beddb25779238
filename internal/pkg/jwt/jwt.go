package jwt

import (
	"context"
	"time"

	"github.com/codewithgaurave/hrms-console-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(employeeID string, role user.Role, expiresIn time.Duration) (token string, expiresAt int64, err error)
	IdentityFromContext(ctx context.Context) (user.Identity, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken mints a console access token. The upstream backend is the
// normal issuer; this exists for local development and tests, with the same
// shared-secret claims layout.
func (j *JWTService) GenerateAccessToken(employeeID string, role user.Role, expiresIn time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(expiresIn).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// IdentityFromContext extracts the authenticated employee from verified claims.
func (j *JWTService) IdentityFromContext(ctx context.Context) (user.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Identity{}, user.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return user.Identity{}, user.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return user.Identity{}, user.ErrInvalidToken
	}

	return user.Identity{
		EmployeeID: employeeID,
		Role:       user.Role(role),
	}, nil
}
