package commands

import (
	"context"
	"errors"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/pkg/errs"
)

// CreateBeerCommandHandler adds a beer to the catalog. UPC uniqueness is
// enforced here at the service layer, before the insert, the same way the
// customer email rule works.
type CreateBeerCommandHandler struct {
	uowFactory BeerUoWFactory
}

// NewCreateBeerCommandHandler creates a handler for catalog creation.
func NewCreateBeerCommandHandler(uowFactory BeerUoWFactory) CreateBeerCommandHandler {
	return CreateBeerCommandHandler{uowFactory: uowFactory}
}

// Handle persists a new catalog record and returns it with its assigned id.
// A UPC already present in the catalog yields an already-exists error.
func (h *CreateBeerCommandHandler) Handle(ctx context.Context, cmd CreateBeerCommand) (*beer.Beer, error) {
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

	existing, err := repo.GetByUPC(ctx, cmd.UPC())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("upc", cmd.UPC())
	}

	b, err := beer.NewBeer(cmd.Name(), cmd.Style(), cmd.UPC(), cmd.QuantityOnHand(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, b); err != nil {
		return nil, err
	}

	created, err := repo.Get(ctx, b.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
