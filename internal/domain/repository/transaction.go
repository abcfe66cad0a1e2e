// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single transaction.
// Use cases receive one inside TransactionManager.Execute and must not hold on
// to the repositories beyond the callback.
type RepositoryFactory interface {
	StudentRepo() StudentRepository
	CredentialRepo() CredentialRepository
}

// TransactionManager runs a unit of work atomically. If the callback returns an
// error the transaction is rolled back and the error is returned unchanged.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
