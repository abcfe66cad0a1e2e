// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "campusconnect/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for use as echo.Echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates a validator with struct-tag validation enabled.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags.
// Failures surface as the application's validation error so the central
// error handler renders a consistent 400 envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
