package middleware

import (
	"strings"

	deliverycontext "campusconnect/internal/delivery/context"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys used by handlers behind the authentication middleware.
const (
	ContextKeyStudentID = "studentID"
	ContextKeyRole      = "role"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity
// on the request context. Every failure mode renders the same 401 so a
// client cannot probe whether a token is malformed, expired, or forged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).
				Debug("token validation failed", "error", err)

			return domainerrors.ErrUnauthenticated.WrapMessage("token validation failed")
		}

		// Expose identity to handlers down the chain.
		c.Set(ContextKeyStudentID, claims.StudentID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}
