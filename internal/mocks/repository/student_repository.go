package repository

import (
	"context"

	"campusconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStudentRepository is a mock implementation of repository.StudentRepository.
type MockStudentRepository struct {
	mock.Mock
}

// NewMockStudentRepository creates a new mock with cleanup-time expectation checks.
func NewMockStudentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStudentRepository {
	m := &MockStudentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	args := m.Called(ctx, id)

	var student *entity.Student
	if args.Get(0) != nil {
		student = args.Get(0).(*entity.Student)
	}

	return student, args.Error(1)
}

func (m *MockStudentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	args := m.Called(ctx, email)

	var student *entity.Student
	if args.Get(0) != nil {
		student = args.Get(0).(*entity.Student)
	}

	return student, args.Error(1)
}

func (m *MockStudentRepository) Create(ctx context.Context, student *entity.Student) error {
	args := m.Called(ctx, student)

	return args.Error(0)
}

func (m *MockStudentRepository) Update(ctx context.Context, student *entity.Student) error {
	args := m.Called(ctx, student)

	return args.Error(0)
}
