// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fileauth/config"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/entity"
	"fileauth/internal/domain/service"
	"fileauth/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte           // Secret key for signing tokens.
	defaultTTL time.Duration    // Lifetime used when callers pass no TTL.
	now        func() time.Time // Clock, replaceable in tests.
}

// Option customises a jwtService.
type Option func(*jwtService)

// WithClock replaces the wall clock used for iat/exp and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	var ttl time.Duration
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	return NewJWTServiceWithOptions(cfg.SecretKey.JWT, ttl)
}

// NewJWTServiceWithOptions builds a token service from an explicit secret and TTL.
func NewJWTServiceWithOptions(secret string, ttl time.Duration, opts ...Option) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("jwt token ttl must be positive, got %s", ttl)
	}

	s := &jwtService{
		secret:     []byte(secret),
		defaultTTL: ttl,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue signs an HS256 token carrying the user's identity and role.
func (s *jwtService) Issue(user *entity.User, ttl time.Duration) (string, error) {
	if user == nil {
		return "", errors.New("cannot issue token for nil user")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	issuedAt := s.now()
	claims := service.Claims{
		Username:  user.Username,
		Role:      user.Role.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks the signature, algorithm and expiry of a token.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid || claims.Username == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token carries no username")
	}

	return claims, nil
}

// DefaultTTL returns the configured token lifetime.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.defaultTTL
}
