// Package repository contains testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"campusconnect/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a new mock with cleanup-time expectation checks.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a new mock with cleanup-time expectation checks.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) StudentRepo() repository.StudentRepository {
	args := m.Called()

	return args.Get(0).(repository.StudentRepository)
}

func (m *MockRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	args := m.Called()

	return args.Get(0).(repository.CredentialRepository)
}
