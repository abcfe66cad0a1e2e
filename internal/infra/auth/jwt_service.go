// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campusconnect/config"
	"campusconnect/internal/domain/entity"
	"campusconnect/internal/domain/service"
	"campusconnect/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Server-held signing secret.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService. The secret and TTL are
// taken from the explicit auth configuration rather than read from the
// environment at call sites.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Auth.TokenSecret),
		ttl:    ttl,
	}, nil
}

type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed token asserting the given identity and role,
// expiring ttl (one hour by default) after issuance.
func (s *jwtService) Issue(studentID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   studentID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string. Malformed tokens, bad
// signatures and expired tokens all come back as an error; callers are not
// expected to tell them apart.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	studentID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}

	return &service.Claims{
		StudentID:        studentID,
		Role:             entity.Role(claims.Role),
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
