package repository

import (
	"context"

	"campusconnect/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCredentialRepository is a mock implementation of repository.CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

// NewMockCredentialRepository creates a new mock with cleanup-time expectation checks.
func NewMockCredentialRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialRepository) Create(ctx context.Context, cred *entity.Credential) error {
	args := m.Called(ctx, cred)

	return args.Error(0)
}

func (m *MockCredentialRepository) Find(ctx context.Context, provider string, providerKey string) (*entity.Credential, error) {
	args := m.Called(ctx, provider, providerKey)

	var cred *entity.Credential
	if args.Get(0) != nil {
		cred = args.Get(0).(*entity.Credential)
	}

	return cred, args.Error(1)
}
