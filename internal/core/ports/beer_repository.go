package ports

import (
	"context"

	"brewery/internal/core/domain/model/beer"
)

// BeerRepository defines the persistence contract for catalog records.
type BeerRepository interface {
	// Add persists a new transient beer; the store assigns the surrogate id.
	Add(ctx context.Context, aggregate *beer.Beer) error

	// Update persists changes to an existing beer using a conditional write
	// on the version counter; a stale version yields a version-conflict error.
	Update(ctx context.Context, aggregate *beer.Beer) error

	// Get retrieves a beer by surrogate id. Absence yields a not-found error.
	Get(ctx context.Context, id int) (*beer.Beer, error)

	// GetByUPC retrieves a beer by its unique UPC. Absence yields a
	// not-found error; used by the service-layer uniqueness check.
	GetByUPC(ctx context.Context, upc string) (*beer.Beer, error)

	// GetAll retrieves the whole catalog ordered by id.
	GetAll(ctx context.Context) ([]*beer.Beer, error)

	// GetAllByIDs resolves a set of beer ids to the subset of matching
	// catalog records keyed by id. Partial matches are not an error: the
	// caller detects missing ids by set difference. Read-only.
	GetAllByIDs(ctx context.Context, ids []int) (map[int]*beer.Beer, error)

	// Delete removes a beer by id. Absence yields a not-found error.
	Delete(ctx context.Context, id int) error
}
