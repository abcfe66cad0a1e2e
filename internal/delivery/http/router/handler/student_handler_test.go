package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campusconnect/config"
	httpmiddleware "campusconnect/internal/delivery/http/middleware"
	"campusconnect/internal/delivery/http/validator"
	"campusconnect/internal/domain/entity"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/infra/auth"
	"campusconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockStudentUsecase is a hand-rolled testify mock for the signup/login usecase.
type mockStudentUsecase struct {
	mock.Mock
}

func (m *mockStudentUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *mockStudentUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

// mockProfileUsecase is a hand-rolled testify mock for the profile usecase.
type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context, studentID uuid.UUID) (*usecase.ProfileView, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ProfileView), args.Error(1)
}

func (m *mockProfileUsecase) UpdateProfile(ctx context.Context, studentID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	args := m.Called(ctx, studentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ProfileView), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the production validator and
// error handler so status mapping can be asserted end to end.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	cfg := &config.Config{}
	errorMiddleware := httpmiddleware.NewErrorMiddleware(discardLogger(), cfg)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	return e
}

func TestStudentHandler_Signup(t *testing.T) {
	studentUC := new(mockStudentUsecase)
	h := NewStudentHandler(studentUC, nil, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/students/signup", h.Signup)

	studentID := uuid.New()
	studentUC.On("Signup", mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(&usecase.AuthOutput{
			Token: "signed_token",
			Student: &entity.Student{
				ID:     studentID,
				Name:   "Jane Doe",
				Email:  "jane@example.edu",
				Course: "Physics",
			},
		}, nil)

	body := `{"name":"Jane Doe","email":"jane@example.edu","course":"Physics","password":"CampusPass123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// Token and student sit at the response root; clients read body.token.
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.Equal(t, "signed_token", parsed["token"])

	student, ok := parsed["student"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jane@example.edu", student["email"])
	assert.Equal(t, studentID.String(), student["id"])
	assert.Equal(t, "Physics", student["course"])

	// Neither the plaintext nor any hash may leak into the response.
	responseBody := rec.Body.String()
	assert.NotContains(t, responseBody, "CampusPass123")
	assert.NotContains(t, responseBody, "password")

	studentUC.AssertExpectations(t)
}

func TestStudentHandler_Signup_ValidationFailure(t *testing.T) {
	studentUC := new(mockStudentUsecase)
	h := NewStudentHandler(studentUC, nil, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/students/signup", h.Signup)

	// Missing email must be rejected before the usecase runs.
	body := `{"name":"Jane Doe","course":"Physics","password":"CampusPass123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	studentUC.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestStudentHandler_Login_UnknownEmail(t *testing.T) {
	studentUC := new(mockStudentUsecase)
	h := NewStudentHandler(studentUC, nil, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/students/login", h.Login)

	studentUC.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrStudentNotFound.WrapMessage("no account for email"))

	body := `{"email":"ghost@example.edu","password":"CampusPass123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "STUDENT_NOT_FOUND")
}

func TestStudentHandler_Login_WrongPassword(t *testing.T) {
	studentUC := new(mockStudentUsecase)
	h := NewStudentHandler(studentUC, nil, discardLogger())

	e := newTestEcho(t)
	e.POST("/api/students/login", h.Login)

	studentUC.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	body := `{"email":"jane@example.edu","password":"WrongPass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestStudentHandler_Profile_AuthFlow(t *testing.T) {
	testConfig := &config.Config{
		Auth: &config.AuthConfig{
			TokenSecret: "integration-test-secret",
			TokenTTL:    time.Hour,
		},
	}
	tokenSvc, err := auth.NewJWTService(testConfig)
	require.NoError(t, err)

	profileUC := new(mockProfileUsecase)
	h := NewStudentHandler(nil, profileUC, discardLogger())

	e := newTestEcho(t)
	authMiddleware := httpmiddleware.NewAuthMiddleware(tokenSvc)
	e.GET("/api/students/profile", h.GetProfile, authMiddleware.Authenticate)

	studentID := uuid.New()
	token, err := tokenSvc.Issue(studentID, entity.RoleStudent)
	require.NoError(t, err)

	profileUC.On("GetProfile", mock.Anything, studentID).
		Return(&usecase.ProfileView{
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane@example.edu",
			Department: "Physics",
			Year:       "3",
		}, nil)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/students/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		// The derived view is the whole response body.
		var view map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Jane", view["firstName"])
		assert.Equal(t, "Doe", view["lastName"])
		assert.Equal(t, "Physics", view["department"])
		assert.Equal(t, "3", view["year"])
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/students/profile", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/students/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	})
}

func TestStudentHandler_UpdateProfile(t *testing.T) {
	testConfig := &config.Config{
		Auth: &config.AuthConfig{
			TokenSecret: "integration-test-secret",
			TokenTTL:    time.Hour,
		},
	}
	tokenSvc, err := auth.NewJWTService(testConfig)
	require.NoError(t, err)

	profileUC := new(mockProfileUsecase)
	h := NewStudentHandler(nil, profileUC, discardLogger())

	e := newTestEcho(t)
	authMiddleware := httpmiddleware.NewAuthMiddleware(tokenSvc)
	e.PUT("/api/students/profile", h.UpdateProfile, authMiddleware.Authenticate)

	studentID := uuid.New()
	token, err := tokenSvc.Issue(studentID, entity.RoleStudent)
	require.NoError(t, err)

	profileUC.On("UpdateProfile", mock.Anything, studentID, mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Run(func(args mock.Arguments) {
			input := args.Get(2).(*usecase.UpdateProfileInput)
			assert.Equal(t, "Jane", input.FirstName)
			assert.Equal(t, "Doe", input.LastName)
			assert.Equal(t, "Physics", input.Department)
		}).
		Return(&usecase.ProfileView{
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane@example.edu",
			Department: "Physics",
		}, nil)

	body := `{"firstName":"Jane","lastName":"Doe","department":"Physics"}`
	req := httptest.NewRequest(http.MethodPut, "/api/students/profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The update answers with a confirmation message plus the updated view.
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.NotEmpty(t, parsed["message"])

	student, ok := parsed["student"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane", student["firstName"])
	assert.Equal(t, "Physics", student["department"])
	// An updated view omits the placeholder year entirely.
	assert.NotContains(t, rec.Body.String(), "year")

	profileUC.AssertExpectations(t)
}
