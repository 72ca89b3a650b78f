package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary: every read and write
// of one operation commits or rolls back together, so a failure partway
// through order placement leaves no partial order behind. Client code must
// explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// BeerOrderRepository returns a BeerOrderRepository bound to the current
	// transaction started by Begin().
	BeerOrderRepository() BeerOrderRepository

	// BeerRepository returns a BeerRepository bound to the current
	// transaction started by Begin().
	BeerRepository() BeerRepository

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction started by Begin().
	CustomerRepository() CustomerRepository
}
