package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction. A returned error or a
	// panic rolls the transaction back; otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository

	NewAuthRepository() AuthRepository

	NewRefreshTokenRepository() RefreshTokenRepository

	NewMFARepository() MFARepository

	NewVerificationTokenRepository() VerificationTokenRepository
}
