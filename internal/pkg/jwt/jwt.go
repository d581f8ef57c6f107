package jwt

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenTypeAccess is the only token type accepted on payroll routes.
const TokenTypeAccess = "access"

type Service interface {
	GenerateAccessToken(userID string, role user.Role, ttl time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService verifies HS256 tokens issued by the identity service with the shared secret.
func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// GenerateAccessToken issues a token in the identity service's claim layout. Used by tests and local tooling.
func (j *JWTService) GenerateAccessToken(userID string, role user.Role, ttl time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(ttl).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    TokenTypeAccess,
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
