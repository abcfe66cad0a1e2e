// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "campusconnect/internal/delivery/context"
	"campusconnect/internal/domain/entity"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/domain/repository"
	"campusconnect/internal/domain/service"
	"campusconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// studentService implements the StudentUsecase interface.
type studentService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// StudentServiceParams holds dependencies for studentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewStudentService is the constructor for studentService. It receives all dependencies as interfaces.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete student registration process.
func (srv *studentService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	// Hash outside the transaction; bcrypt is CPU-bound and needs no DB state.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newStudent := &entity.Student{
		Name:   input.Name,
		Email:  input.Email,
		Course: input.Course,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()
		credRepo := repoFactory.CredentialRepo()

		_, findErr := studentRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrStudentAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrStudentNotFound) {
			return errors.Wrap(findErr, "failed to find student by email")
		}

		// The unique email constraint closes the lookup/create race: a
		// concurrent signup for the same email fails Create with the same
		// AlreadyExists outcome.
		if createErr := studentRepo.Create(ctx, newStudent); createErr != nil {
			return errors.Wrap(createErr, "failed to create student during signup")
		}

		newCred := &entity.Credential{
			StudentID:    newStudent.ID,
			Provider:     entity.ProviderTypeEmail,
			ProviderKey:  input.Email,
			PasswordHash: hashedPassword,
		}

		if createErr := credRepo.Create(ctx, newCred); createErr != nil {
			return errors.Wrap(createErr, "failed to create credential during signup")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	token, err := srv.tokenService.Issue(newStudent.ID, entity.RoleStudent)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after signup", slog.Any("studentID", newStudent.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after signup")
	}

	srv.publishEvent(ctx, service.AccountEventSignup, newStudent)
	srv.log(ctx).Debug("Signup completed", slog.Any("studentID", newStudent.ID), slog.String("course", newStudent.Course))

	return &usecase.AuthOutput{Token: token, Student: newStudent}, nil
}

// Login orchestrates the student login process.
func (srv *studentService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	cred, err := srv.loadCredential(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, cred.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	student, err := srv.loadStudent(ctx, cred.StudentID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(student.ID, entity.RoleStudent)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("studentID", student.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.publishEvent(ctx, service.AccountEventLogin, student)
	srv.log(ctx).Debug("Login successful", slog.Any("studentID", student.ID))

	return &usecase.AuthOutput{Token: token, Student: student}, nil
}

func (srv *studentService) loadCredential(ctx context.Context, email string) (*entity.Credential, error) {
	var cred *entity.Credential

	// Short transaction so the lookup reads from the primary, not a stale replica.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.CredentialRepo()

		var findErr error
		cred, findErr = credRepo.Find(ctx, entity.ProviderTypeEmail, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCredentialNotFound) {
				// Unknown email surfaces as a 404, matching the legacy API contract.
				return domainerrors.ErrStudentNotFound.WrapMessage("no account for email")
			}

			return errors.Wrap(findErr, "failed to find credential")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login credential transaction")
	}

	return cred, nil
}

func (srv *studentService) loadStudent(ctx context.Context, studentID uuid.UUID) (*entity.Student, error) {
	var student *entity.Student

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		studentRepo := repoFactory.StudentRepo()

		var findErr error
		student, findErr = studentRepo.FindByID(ctx, studentID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrStudentNotFound) {
				return domainerrors.ErrStudentNotFound.WrapMessage("credential references missing student")
			}

			return errors.Wrap(findErr, "failed to find student by id")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login student transaction")
	}

	return student, nil
}

// publishEvent emits an account lifecycle event. Publishing is best-effort;
// a broker outage must not fail the request.
func (srv *studentService) publishEvent(ctx context.Context, eventType string, student *entity.Student) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		StudentID:  student.ID.String(),
		Email:      student.Email,
		Course:     student.Course,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.Any("studentID", student.ID),
			slog.Any("error", err),
		)
	}
}
