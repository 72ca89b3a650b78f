package commands

import (
	"context"
	"errors"

	"brewery/internal/core/domain/model/customer"
	"brewery/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers a customer. Email uniqueness is a
// service-layer rule: the store does not constrain the column, since email is
// optional and many rows may leave it empty.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle persists a new customer and returns it with its assigned id. A
// non-empty email already held by another customer yields an already-exists
// error.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	d := cmd.Details()

	if d.Email != "" {
		existing, err := repo.GetByEmail(ctx, d.Email)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, errs.NewObjectAlreadyExistsError("email", d.Email)
		}
	}

	c, err := customer.NewCustomer(
		d.Name, d.Email, d.Phone, d.AddressLine1, d.AddressLine2, d.City, d.State, d.PostalCode)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return nil, err
	}

	created, err := repo.Get(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
