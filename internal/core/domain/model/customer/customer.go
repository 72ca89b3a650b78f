// Package customer contains the customer side of the domain model. A Customer
// has its own identity and version counter; orders reference customers only by
// a free-text customerRef, so deleting a customer never touches orders.
package customer

import (
	"errors"
	"fmt"
	"time"

	"brewery/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a contact/address record with optimistic concurrency.
//
// Invariants:
//   - name, addressLine1, city, state and postalCode are non-empty
//   - email and phone are optional; email uniqueness is enforced at the
//     service layer, not by the store
//   - identity is the surrogate id assigned by the store; transient instances
//     are never equal to each other
type Customer struct {
	id           int
	version      int
	name         string
	email        string
	phone        string
	addressLine1 string
	addressLine2 string
	city         string
	state        string
	postalCode   string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewCustomer creates a transient customer. Optional fields (email, phone,
// addressLine2) may be empty. The surrogate id is assigned by the store.
func NewCustomer(name, email, phone, addressLine1, addressLine2, city, state, postalCode string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setRequired("name", name, func(v string) { c.name = v }),
		c.setRequired("addressLine1", addressLine1, func(v string) { c.addressLine1 = v }),
		c.setRequired("city", city, func(v string) { c.city = v }),
		c.setRequired("state", state, func(v string) { c.state = v }),
		c.setRequired("postalCode", postalCode, func(v string) { c.postalCode = v }),
	); err != nil {
		return nil, err
	}

	c.email = email
	c.phone = phone
	c.addressLine2 = addressLine2
	return c, nil
}

// RestoreCustomer reconstructs a persisted customer from storage.
func RestoreCustomer(
	id, version int,
	name, email, phone, addressLine1, addressLine2, city, state, postalCode string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a persisted id", id))
	}

	c, err := NewCustomer(name, email, phone, addressLine1, addressLine2, city, state, postalCode)
	if err != nil {
		return nil, err
	}

	c.id = id
	c.version = version
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Customer was created via its constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by surrogate id. Transient (unsaved)
// instances are never equal to each other.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id != 0 && c.id == other.id
}

// ChangeDetails replaces the mutable attributes, keeping identity and version
// untouched. Used by the customer update flow.
func (c *Customer) ChangeDetails(
	name, email, phone, addressLine1, addressLine2, city, state, postalCode string,
) error {
	if err := errors.Join(
		c.setRequired("name", name, func(v string) { c.name = v }),
		c.setRequired("addressLine1", addressLine1, func(v string) { c.addressLine1 = v }),
		c.setRequired("city", city, func(v string) { c.city = v }),
		c.setRequired("state", state, func(v string) { c.state = v }),
		c.setRequired("postalCode", postalCode, func(v string) { c.postalCode = v }),
	); err != nil {
		return err
	}

	c.email = email
	c.phone = phone
	c.addressLine2 = addressLine2
	return nil
}

// AssignID sets the surrogate id after the store has inserted the row.
func (c *Customer) AssignID(id int) error {
	if c.id != 0 {
		return errs.NewPreconditionViolatedError(fmt.Sprintf("customer already has id %d", c.id))
	}
	if id <= 0 {
		return errs.NewPreconditionViolatedError(fmt.Sprintf("%d is not a valid assigned id", id))
	}
	c.id = id
	return nil
}

// ID returns the surrogate id, or 0 for a transient record.
func (c *Customer) ID() int { return c.id }

// Version returns the optimistic-concurrency counter.
func (c *Customer) Version() int { return c.version }

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// Email returns the optional email address ("" when unset).
func (c *Customer) Email() string { return c.email }

// Phone returns the optional phone number ("" when unset).
func (c *Customer) Phone() string { return c.phone }

// AddressLine1 returns the first address line.
func (c *Customer) AddressLine1() string { return c.addressLine1 }

// AddressLine2 returns the optional second address line ("" when unset).
func (c *Customer) AddressLine2() string { return c.addressLine2 }

// City returns the city.
func (c *Customer) City() string { return c.city }

// State returns the state or region.
func (c *Customer) State() string { return c.state }

// PostalCode returns the postal code.
func (c *Customer) PostalCode() string { return c.postalCode }

// CreatedAt returns the creation timestamp assigned by the store.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last-update timestamp assigned by the store.
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) setRequired(param, value string, assign func(string)) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	assign(value)
	return nil
}
