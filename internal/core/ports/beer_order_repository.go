package ports

import (
	"context"

	"brewery/internal/core/domain/model/beerorder"
)

// BeerOrderRepository defines the persistence contract for the order
// aggregate. The order and its owned lines are always written and read as one
// unit: Add inserts both atomically, Get loads the lines eagerly, and Delete
// cascades to the lines.
type BeerOrderRepository interface {
	// Add persists a new transient order together with all of its lines in a
	// single atomic write. The store assigns the surrogate id and propagates
	// it into each line's composite key; on success the aggregate carries the
	// assigned id.
	Add(ctx context.Context, aggregate *beerorder.BeerOrder) error

	// Update persists changes to an existing order using a conditional write
	// on the version counter. A stale version yields a version-conflict
	// error, distinguishable from not-found. The line set is replaced as a
	// whole, which implements cascade and orphan removal explicitly.
	Update(ctx context.Context, aggregate *beerorder.BeerOrder) error

	// Get retrieves an order by surrogate id with its lines fully
	// materialized, beer name snapshots included. Absence yields a not-found
	// error; a partially loaded aggregate is never returned.
	Get(ctx context.Context, id int) (*beerorder.BeerOrder, error)

	// Delete removes the order and cascades to its lines.
	Delete(ctx context.Context, id int) error
}
