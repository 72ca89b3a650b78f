package commands

import (
	"errors"
	"fmt"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a full replacement of a customer's mutable
// attributes.
type UpdateCustomerCommand struct {
	customerID int
	details    CustomerDetails

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update the customer with the
// given id.
func NewUpdateCustomerCommand(customerID int, details CustomerDetails) (UpdateCustomerCommand, error) {
	if customerID <= 0 {
		return UpdateCustomerCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"customerId", fmt.Errorf("%d is not a valid customer id", customerID))
	}
	if err := details.validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the id of the customer to update.
func (c UpdateCustomerCommand) CustomerID() int { return c.customerID }

// Details returns the new customer attributes.
func (c UpdateCustomerCommand) Details() CustomerDetails { return c.details }
