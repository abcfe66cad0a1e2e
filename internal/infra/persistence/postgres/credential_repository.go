package postgres

import (
	"context"

	"campusconnect/internal/domain/entity"
	domainerrors "campusconnect/internal/domain/errors"
	"campusconnect/internal/domain/repository"
	"campusconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a new login credential for a student.
func (repo *credentialRepository) Create(ctx context.Context, cred *entity.Credential) error {
	credM := fromCredentialDomain(cred)

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStudentAlreadyExists.WrapMessage("credential already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "credential references unknown student")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	cred.ID = credM.ID
	cred.CreatedAt = credM.CreatedAt

	return nil
}

// Find retrieves a credential by provider and provider key (the login identifier).
func (repo *credentialRepository) Find(ctx context.Context, provider, providerKey string) (*entity.Credential, error) {
	var credM model.CredentialModel
	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_key = ?", provider, providerKey).
		First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return toCredentialDomain(&credM), nil
}

// --- Mapper Functions ---

// toCredentialDomain converts a GORM CredentialModel to a domain Credential entity.
func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:           data.ID,
		StudentID:    data.StudentID,
		Provider:     data.Provider,
		ProviderKey:  data.ProviderKey,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

// fromCredentialDomain converts a domain Credential entity to a GORM CredentialModel.
func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:           data.ID,
		StudentID:    data.StudentID,
		Provider:     data.Provider,
		ProviderKey:  data.ProviderKey,
		PasswordHash: data.PasswordHash,
	}
}
