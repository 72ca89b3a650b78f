package queries

import (
	"errors"
	"fmt"
	"time"

	"brewery/internal/core/domain/model/customer"
	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves one customer by surrogate id.
type GetCustomerQuery struct {
	customerID int

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for the customer with the given id.
func NewGetCustomerQuery(customerID int) (GetCustomerQuery, error) {
	if customerID <= 0 {
		return GetCustomerQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"customerId", fmt.Errorf("%d is not a valid customer id", customerID))
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the requested customer id.
func (q GetCustomerQuery) CustomerID() int { return q.customerID }

// CustomerResponse is the external view of a customer record.
type CustomerResponse struct {
	ID           int
	Version      int
	Name         string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCustomerResponse maps a customer record to its external view. The
// customer command flows reuse it.
func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID(),
		Version:      c.Version(),
		Name:         c.Name(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		AddressLine1: c.AddressLine1(),
		AddressLine2: c.AddressLine2(),
		City:         c.City(),
		State:        c.State(),
		PostalCode:   c.PostalCode(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}
