// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	httpmiddleware "campusconnect/internal/delivery/http/middleware"
	"campusconnect/internal/delivery/http/response"
	"campusconnect/internal/domain/entity"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler holds dependencies for student account handlers.
type StudentHandler struct {
	studentUC usecase.StudentUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(studentUC usecase.StudentUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		studentUC: studentUC,
		profileUC: profileUC,
		logger:    logger,
	}
}

// studentView is the student payload returned by signup and login.
// The password hash never appears here.
type studentView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Course string    `json:"course"`
}

// authResponse carries a freshly issued token alongside the student record.
// Signup, login and the profile endpoints answer with these top-level shapes
// directly; existing clients read token and student off the response root.
type authResponse struct {
	Token   string      `json:"token"`
	Student studentView `json:"student"`
}

// updateProfileResponse confirms a profile update with the post-update view.
type updateProfileResponse struct {
	Message string               `json:"message"`
	Student *usecase.ProfileView `json:"student"`
}

func toStudentView(student *entity.Student) studentView {
	return studentView{
		ID:     student.ID,
		Name:   student.Name,
		Email:  student.Email,
		Course: student.Course,
	}
}

// Signup handles the account creation request.
func (h *StudentHandler) Signup(c echo.Context) error {
	var input *usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.studentUC.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, authResponse{
		Token:   output.Token,
		Student: toStudentView(output.Student),
	})
}

// Login handles the login request.
func (h *StudentHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.studentUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authResponse{
		Token:   output.Token,
		Student: toStudentView(output.Student),
	})
}

// GetProfile handles the request for the caller's own profile.
func (h *StudentHandler) GetProfile(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	view, err := h.profileUC.GetProfile(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, view)
}

// UpdateProfile handles the profile update request.
func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	studentID, err := callerID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	view, err := h.profileUC.UpdateProfile(c.Request().Context(), studentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, updateProfileResponse{
		Message: "Profile updated successfully",
		Student: view,
	})
}

// callerID reads the authenticated student's ID set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	studentID, ok := c.Get(httpmiddleware.ContextKeyStudentID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WrapMessage("student ID missing from context")
	}

	return studentID, nil
}
