package commands

import (
	"context"
	"errors"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/pkg/errs"
)

// UpdateBeerCommandHandler replaces the mutable attributes of a catalog
// record. The update is a read-modify-write inside one transaction; the
// store's conditional write turns a concurrent modification into a version
// conflict.
type UpdateBeerCommandHandler struct {
	uowFactory BeerUoWFactory
}

// NewUpdateBeerCommandHandler creates a handler for catalog updates.
func NewUpdateBeerCommandHandler(uowFactory BeerUoWFactory) UpdateBeerCommandHandler {
	return UpdateBeerCommandHandler{uowFactory: uowFactory}
}

// Handle updates the record and returns it with the bumped version. Moving
// the record onto a UPC another beer already holds yields an already-exists
// error.
func (h *UpdateBeerCommandHandler) Handle(ctx context.Context, cmd UpdateBeerCommand) (*beer.Beer, error) {
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

	repo := uow.BeerRepository()

	b, err := repo.Get(ctx, cmd.BeerID())
	if err != nil {
		return nil, err
	}

	if b.UPC() != cmd.UPC() {
		holder, lookupErr := repo.GetByUPC(ctx, cmd.UPC())
		if lookupErr != nil && !errors.Is(lookupErr, errs.ErrObjectNotFound) {
			return nil, lookupErr
		}
		if holder != nil && !holder.IsEqual(b) {
			return nil, errs.NewObjectAlreadyExistsError("upc", cmd.UPC())
		}
	}

	if err = b.ChangeDetails(cmd.Name(), cmd.Style(), cmd.UPC(), cmd.QuantityOnHand(), cmd.Price()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, b); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, b.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
