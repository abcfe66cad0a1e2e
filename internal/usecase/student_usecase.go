// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"campusconnect/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new student.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Course   string `json:"course" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a student to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer token together with the public view of
// the student record. The password hash never appears here.
type AuthOutput struct {
	Token   string
	Student *entity.Student
}

// StudentUsecase defines the interface for account-level student operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type StudentUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
