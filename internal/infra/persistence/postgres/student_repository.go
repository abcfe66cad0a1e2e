package postgres

import (
	"context"

	"campusconnect/internal/domain/entity"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/domain/repository"
	"campusconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the domain.StudentRepository interface using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindByID retrieves a single student by their unique ID.
func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by id")
	}

	return toStudentDomain(&studentM), nil
}

// FindByEmail retrieves a single student by their email address.
func (repo *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var studentM model.StudentModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	return toStudentDomain(&studentM), nil
}

// Create persists a new student and copies the generated ID and timestamps
// back onto the entity.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStudentAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.ID = studentM.ID
	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// Update modifies an existing student record.
func (repo *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Save(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStudentAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update student")
	}

	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toStudentDomain converts a GORM StudentModel to a domain Student entity.
func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Course:    data.Course,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStudentDomain converts a domain Student entity to a GORM StudentModel for persistence.
func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Course:    data.Course,
		CreatedAt: data.CreatedAt, // Save writes all columns; keep the original creation time.
	}
}
