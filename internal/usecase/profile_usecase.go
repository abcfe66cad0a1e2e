// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProfileView is the derived response shape for profile reads: the stored name
// split into first/last, and course surfaced as "department". Year is a legacy
// placeholder carried for API compatibility; the entity has no such attribute.
type ProfileView struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Year       string `json:"year,omitempty"`
}

// UpdateProfileInput defines the data required to update a student profile.
// First and last name are recombined into the single stored name field.
type UpdateProfileInput struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName"`
	Department string `json:"department" validate:"required"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, studentID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, studentID uuid.UUID, input *UpdateProfileInput) (*ProfileView, error)
}
