package commands

import (
	"errors"
	"fmt"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand represents a request to remove a customer.
type DeleteCustomerCommand struct {
	customerID int

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to delete the customer with the
// given id.
func NewDeleteCustomerCommand(customerID int) (DeleteCustomerCommand, error) {
	if customerID <= 0 {
		return DeleteCustomerCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"customerId", fmt.Errorf("%d is not a valid customer id", customerID))
	}

	return DeleteCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the id of the customer to delete.
func (c DeleteCustomerCommand) CustomerID() int { return c.customerID }
