// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"context"

	"campusconnect/internal/domain/entity"
	"campusconnect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock with cleanup-time expectation checks.
func NewMockPasswordHasher(t mockTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock with cleanup-time expectation checks.
func NewMockTokenService(t mockTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(studentID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(studentID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)

	var claims *service.Claims
	if args.Get(0) != nil {
		claims = args.Get(0).(*service.Claims)
	}

	return claims, args.Error(1)
}

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new mock with cleanup-time expectation checks.
func NewMockEventPublisher(t mockTestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
