// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation at construction,
// transaction management through a unit of work, and persistence.
package commands

import (
	"context"

	"brewery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest unit of work it needs, so tests can mock
// exactly the repositories a command touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BeerOrderRepoFactory provides access to the order repository within a transaction.
	BeerOrderRepoFactory interface {
		BeerOrderRepository() ports.BeerOrderRepository
	}

	// BeerRepoFactory provides access to the catalog repository within a transaction.
	BeerRepoFactory interface {
		BeerRepository() ports.BeerRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for the order placement workflow, which
	// reads the catalog and writes the order aggregate in one transaction.
	OrderUoW interface {
		TxManager
		BeerOrderRepoFactory
		BeerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BeerUoW manages transactions for catalog-only operations.
	BeerUoW interface {
		TxManager
		BeerRepoFactory
	}

	// BeerUoWFactory creates new catalog unit of work instances.
	BeerUoWFactory interface {
		Create() BeerUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}
)
