package commands

import (
	"errors"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CustomerDetails carries the attributes shared by the customer create and
// update commands. Email, phone and addressLine2 are optional ("" = unset).
type CustomerDetails struct {
	Name         string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
}

func (d CustomerDetails) validate() error {
	if d.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if d.AddressLine1 == "" {
		return errs.NewValueIsRequiredError("addressLine1")
	}
	if d.City == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if d.State == "" {
		return errs.NewValueIsRequiredError("state")
	}
	if d.PostalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	return nil
}

// CreateCustomerCommand represents a request to register a customer.
type CreateCustomerCommand struct {
	details CustomerDetails

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer with the
// given contact and address details.
func NewCreateCustomerCommand(details CustomerDetails) (CreateCustomerCommand, error) {
	if err := details.validate(); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Details returns the requested customer attributes.
func (c CreateCustomerCommand) Details() CustomerDetails { return c.details }
