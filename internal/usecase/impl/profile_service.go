// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "campusconnect/internal/delivery/context"
	"campusconnect/internal/domain/entity"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/domain/repository"
	"campusconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// legacyYearPlaceholder is the hard-coded "year" value the profile read has
// always returned. The student record carries no year attribute; the value is
// preserved verbatim for API compatibility with existing clients.
const legacyYearPlaceholder = "3"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the derived profile view for the authenticated student.
func (srv *profileService) GetProfile(ctx context.Context, studentID uuid.UUID) (*usecase.ProfileView, error) {
	srv.log(ctx).Debug("Getting student profile", slog.Any("studentID", studentID))

	student, err := srv.findStudent(ctx, studentID)
	if err != nil {
		srv.log(ctx).Warn("Failed to get student profile", slog.Any("studentID", studentID), slog.Any("error", err))

		return nil, err
	}

	view := toProfileView(student)
	view.Year = legacyYearPlaceholder

	return view, nil
}

// UpdateProfile recombines the submitted first/last name into the stored name
// field, patches name and course, and returns the post-update derived view.
func (srv *profileService) UpdateProfile(ctx context.Context, studentID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	srv.log(ctx).Info("Updating student profile", slog.Any("studentID", studentID))

	var updated *entity.Student

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		student, findErr := studentRepo.FindByID(ctx, studentID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound.WrapMessage("token references missing student")
			}

			return errors.Wrap(findErr, "failed to find student")
		}

		student.Name = entity.JoinName(input.FirstName, input.LastName)
		student.Course = input.Department

		if updateErr := studentRepo.Update(ctx, student); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update student profile")
		}

		updated = student

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update student profile", slog.Any("studentID", studentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Student profile updated", slog.Any("studentID", studentID))

	return toProfileView(updated), nil
}

func (srv *profileService) findStudent(ctx context.Context, studentID uuid.UUID) (*entity.Student, error) {
	var student *entity.Student

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		found, findErr := studentRepo.FindByID(ctx, studentID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrStudentNotFound) {
				// A valid token can outlive its account; the read surfaces 404.
				return domainerrors.ErrStudentNotFound.WrapMessage("token references missing student")
			}

			return errors.Wrap(findErr, "failed to find student")
		}
		student = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile read transaction")
	}

	return student, nil
}

// toProfileView maps a student entity to the externally exposed derived view.
func toProfileView(student *entity.Student) *usecase.ProfileView {
	first, last := entity.SplitName(student.Name)

	return &usecase.ProfileView{
		FirstName:  first,
		LastName:   last,
		Email:      student.Email,
		Department: student.Course,
	}
}
