package commands

import (
	"context"
	"fmt"
	"strings"

	"brewery/internal/core/domain/model/beerorder"
	"brewery/internal/pkg/errs"
)

// PlaceBeerOrderCommandHandler implements the order placement workflow: it
// resolves the requested beers against the catalog, assembles the order
// aggregate, and persists it atomically inside one unit of work.
//
// Failure semantics:
//   - any beer id absent from the catalog fails the whole request with a
//     not-found error naming every missing id; nothing is persisted
//   - invalid-argument conditions never reach this handler, the command
//     constructor rejects them first
type PlaceBeerOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceBeerOrderCommandHandler creates a handler for order placement.
func NewPlaceBeerOrderCommandHandler(uowFactory OrderUoWFactory) PlaceBeerOrderCommandHandler {
	return PlaceBeerOrderCommandHandler{uowFactory: uowFactory}
}

// Handle places the order and returns the persisted aggregate with all lines
// materialized (composite keys completed, store timestamps loaded). The
// returned aggregate is safe to hand to the presentation layer: it is
// re-read eagerly inside the same transaction before commit.
func (h *PlaceBeerOrderCommandHandler) Handle(
	ctx context.Context, cmd PlaceBeerOrderCommand,
) (*beerorder.BeerOrder, error) {
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

	beersByID, err := uow.BeerRepository().GetAllByIDs(ctx, cmd.BeerIDs())
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, id := range cmd.BeerIDs() {
		if _, ok := beersByID[id]; !ok {
			missing = append(missing, fmt.Sprintf("%d", id))
		}
	}
	if len(missing) > 0 {
		return nil, errs.NewObjectNotFoundError("beerIds", strings.Join(missing, ", "))
	}

	order, err := beerorder.NewBeerOrder(cmd.CustomerRef())
	if err != nil {
		return nil, err
	}
	for _, item := range cmd.Items() {
		if err = order.AddLine(beersByID[item.BeerID], item.Quantity); err != nil {
			return nil, err
		}
	}

	orderRepo := uow.BeerOrderRepository()
	if err = orderRepo.Add(ctx, order); err != nil {
		return nil, err
	}

	// Re-read eagerly before the transaction closes so no lazily loaded
	// state ever crosses the boundary to the caller.
	materialized, err := orderRepo.Get(ctx, order.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return materialized, nil
}
