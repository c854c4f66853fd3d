package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back. Otherwise, it's
	// committed. All repository operations within the function use the same
	// database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so that persisting match proposals and flipping the request
// status commit or roll back together.
type RepositoryFactory interface {
	// NewHelpRequestRepository returns a HelpRequestRepository bound to the current transaction.
	NewHelpRequestRepository() HelpRequestRepository

	// NewMatchRepository returns a MatchRepository bound to the current transaction.
	NewMatchRepository() MatchRepository
}
