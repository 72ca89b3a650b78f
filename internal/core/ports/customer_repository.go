package ports

import (
	"context"

	"brewery/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers. Deleting
// a customer never cascades to orders: orders reference customers only by a
// free-text customerRef.
type CustomerRepository interface {
	// Add persists a new transient customer; the store assigns the surrogate id.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer using a conditional
	// write on the version counter; a stale version yields a
	// version-conflict error.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by surrogate id. Absence yields a not-found error.
	Get(ctx context.Context, id int) (*customer.Customer, error)

	// GetByEmail retrieves a customer by email. Absence yields a not-found
	// error; used by the service-layer email uniqueness check.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// GetAll retrieves all customers ordered by id.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Delete removes a customer by id. Absence yields a not-found error.
	Delete(ctx context.Context, id int) error
}
