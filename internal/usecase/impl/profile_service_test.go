package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campusconnect/internal/domain/entity"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/domain/repository"
	mockRepo "campusconnect/internal/mocks/repository"
	"campusconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return profileServiceFixtures{
		service:   NewProfileService(txManager, logger),
		txManager: txManager,
	}
}

// expectProfileLookup wires one transaction resolving FindByID for the given student.
func expectProfileLookup(t *testing.T, fixtures profileServiceFixtures, ctx context.Context, studentID uuid.UUID, student *entity.Student, findErr error) *mockRepo.MockStudentRepository {
	t.Helper()

	mockStudentRepo := mockRepo.NewMockStudentRepository(t)

	var execErr error
	if findErr != nil {
		execErr = errors.Wrap(domainerrors.ErrStudentNotFound, "token references missing student")
	}

	fixtures.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.On("StudentRepo").Return(mockStudentRepo)

			mockStudentRepo.On("FindByID", ctx, studentID).Return(student, findErr)

			_ = fn(mockFactory)
		}).
		Return(execErr).
		Once()

	return mockStudentRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	studentID := uuid.New()
	student := &entity.Student{
		ID:     studentID,
		Name:   "Jane van Doe",
		Email:  "jane@example.edu",
		Course: "Physics",
	}

	expectProfileLookup(t, fixtures, ctx, studentID, student, nil)

	view, err := fixtures.service.GetProfile(ctx, studentID)

	require.NoError(t, err)
	assert.Equal(t, "Jane", view.FirstName)
	assert.Equal(t, "van Doe", view.LastName)
	assert.Equal(t, "jane@example.edu", view.Email)
	assert.Equal(t, "Physics", view.Department)
	assert.Equal(t, "3", view.Year)
}

func TestProfileService_GetProfile_SingleTokenName(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	studentID := uuid.New()
	student := &entity.Student{
		ID:     studentID,
		Name:   "Cher",
		Email:  "cher@example.edu",
		Course: "Music",
	}

	expectProfileLookup(t, fixtures, ctx, studentID, student, nil)

	view, err := fixtures.service.GetProfile(ctx, studentID)

	require.NoError(t, err)
	assert.Equal(t, "Cher", view.FirstName)
	assert.Empty(t, view.LastName)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	studentID := uuid.New()

	expectProfileLookup(t, fixtures, ctx, studentID, nil, repository.ErrStudentNotFound)

	view, err := fixtures.service.GetProfile(ctx, studentID)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	studentID := uuid.New()
	stored := &entity.Student{
		ID:     studentID,
		Name:   "Old Name",
		Email:  "jane@example.edu",
		Course: "History",
	}
	input := &usecase.UpdateProfileInput{
		FirstName:  "Jane",
		LastName:   "Doe",
		Department: "Physics",
	}

	mockStudentRepo := expectProfileLookup(t, fixtures, ctx, studentID, stored, nil)
	mockStudentRepo.On("Update", ctx, mock.AnythingOfType("*entity.Student")).
		Run(func(args mock.Arguments) {
			student := args.Get(1).(*entity.Student)
			assert.Equal(t, "Jane Doe", student.Name)
			assert.Equal(t, "Physics", student.Course)
		}).
		Return(nil)

	view, err := fixtures.service.UpdateProfile(ctx, studentID, input)

	require.NoError(t, err)
	assert.Equal(t, "Jane", view.FirstName)
	assert.Equal(t, "Doe", view.LastName)
	assert.Equal(t, "jane@example.edu", view.Email)
	assert.Equal(t, "Physics", view.Department)
	// The updated view carries no enrollment year.
	assert.Empty(t, view.Year)
}

func TestProfileService_UpdateProfile_EmptyLastName(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	studentID := uuid.New()
	stored := &entity.Student{
		ID:     studentID,
		Name:   "Jane Doe",
		Email:  "jane@example.edu",
		Course: "Physics",
	}
	input := &usecase.UpdateProfileInput{
		FirstName:  "Jane",
		LastName:   "",
		Department: "Physics",
	}

	mockStudentRepo := expectProfileLookup(t, fixtures, ctx, studentID, stored, nil)
	mockStudentRepo.On("Update", ctx, mock.AnythingOfType("*entity.Student")).
		Run(func(args mock.Arguments) {
			student := args.Get(1).(*entity.Student)
			// No trailing space when the last name is empty.
			assert.Equal(t, "Jane", student.Name)
		}).
		Return(nil)

	view, err := fixtures.service.UpdateProfile(ctx, studentID, input)

	require.NoError(t, err)
	assert.Equal(t, "Jane", view.FirstName)
	assert.Empty(t, view.LastName)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fixtures := createTestProfileService(t)

	ctx := context.Background()
	studentID := uuid.New()
	input := &usecase.UpdateProfileInput{
		FirstName:  "Jane",
		LastName:   "Doe",
		Department: "Physics",
	}

	expectProfileLookup(t, fixtures, ctx, studentID, nil, repository.ErrStudentNotFound)

	view, err := fixtures.service.UpdateProfile(ctx, studentID, input)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}
