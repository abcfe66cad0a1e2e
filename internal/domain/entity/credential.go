// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail identifies the email/password login method.
// Kept as a discriminator so other providers can be added without a schema change.
const ProviderTypeEmail = "email"

// Credential represents a single way of logging in to a student account.
// For the email provider, ProviderKey is the login email and PasswordHash the
// bcrypt hash of the current password. The hash is set at signup and only
// rewritten when the plaintext password changes.
type Credential struct {
	ID           uuid.UUID // Unique ID for this credential record itself.
	StudentID    uuid.UUID // Links this credential to the Student it belongs to.
	Provider     string    // The login provider, e.g. "email".
	ProviderKey  string    // Provider-specific login key; the email address for "email".
	PasswordHash string    // Bcrypt hash. Never stored or returned in plaintext.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}
