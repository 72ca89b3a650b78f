package commands

import (
	"context"
	"errors"

	"brewery/internal/core/domain/model/customer"
	"brewery/internal/pkg/errs"
)

// UpdateCustomerCommandHandler replaces the mutable attributes of a customer
// with the same read-modify-write shape the catalog update uses.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle updates the customer and returns it with the bumped version. Moving
// the customer onto an email another customer already holds yields an
// already-exists error.
func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context, cmd UpdateCustomerCommand,
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

	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if d.Email != "" && d.Email != c.Email() {
		holder, lookupErr := repo.GetByEmail(ctx, d.Email)
		if lookupErr != nil && !errors.Is(lookupErr, errs.ErrObjectNotFound) {
			return nil, lookupErr
		}
		if holder != nil && !holder.IsEqual(c) {
			return nil, errs.NewObjectAlreadyExistsError("email", d.Email)
		}
	}

	if err = c.ChangeDetails(
		d.Name, d.Email, d.Phone, d.AddressLine1, d.AddressLine2, d.City, d.State, d.PostalCode,
	); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
