package service

import (
	"campusconnect/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by CampusConnect bearer tokens.
type Claims struct {
	StudentID uuid.UUID
	Role      entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token asserting an identity and role.
	Issue(studentID uuid.UUID, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims. Malformed,
	// tampered and expired tokens all fail the same way; callers surface a
	// single "unauthenticated" outcome.
	Validate(tokenString string) (*Claims, error)
}
