package commands

import "context"

// DeleteBeerCommandHandler removes a catalog record. Existing order lines keep
// their denormalized beer name, so the delete never cascades into orders.
type DeleteBeerCommandHandler struct {
	uowFactory BeerUoWFactory
}

// NewDeleteBeerCommandHandler creates a handler for catalog deletion.
func NewDeleteBeerCommandHandler(uowFactory BeerUoWFactory) DeleteBeerCommandHandler {
	return DeleteBeerCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the record. Deleting an id that does not exist yields a
// not-found error.
func (h *DeleteBeerCommandHandler) Handle(ctx context.Context, cmd DeleteBeerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.BeerRepository().Delete(ctx, cmd.BeerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
