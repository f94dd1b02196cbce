package service

import (
	"time"

	"fileauth/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
// It carries identity and role only; secrets never enter a token.
type Claims struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// UserRole returns the role claim as a domain role.
func (c *Claims) UserRole() entity.Role {
	return entity.Role(c.Role)
}

// TokenService defines the interface for issuing and verifying JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for the user that expires after ttl.
	Issue(user *entity.User, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the claims.
	Verify(tokenString string) (*Claims, error)

	// DefaultTTL returns the configured token lifetime.
	DefaultTTL() time.Duration
}
