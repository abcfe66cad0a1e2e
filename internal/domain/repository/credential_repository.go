// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"campusconnect/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no login credential exists for a lookup key.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the standard operations for login-credential persistence.
type CredentialRepository interface {
	// Create persists a new credential (e.g. an email/password pair) for a student.
	Create(ctx context.Context, cred *entity.Credential) error

	// Find retrieves a credential by its provider and provider-specific key.
	Find(ctx context.Context, provider string, providerKey string) (*entity.Credential, error)
}
