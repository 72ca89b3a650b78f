package queries

import (
	"context"

	"brewery/internal/core/domain/model/beerorder"
)

// GetBeerOrderQueryHandler loads one order with its lines eagerly materialized
// and maps it to the external view.
type GetBeerOrderQueryHandler struct {
	orders BeerOrderReader
}

// NewGetBeerOrderQueryHandler creates a handler for order retrieval.
func NewGetBeerOrderQueryHandler(orders BeerOrderReader) GetBeerOrderQueryHandler {
	return GetBeerOrderQueryHandler{orders: orders}
}

// Handle returns the order view, or a not-found error when the id is absent.
func (h GetBeerOrderQueryHandler) Handle(
	ctx context.Context, query GetBeerOrderQuery,
) (GetBeerOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBeerOrderQueryResponse{}, err
	}

	order, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetBeerOrderQueryResponse{}, err
	}

	return NewBeerOrderResponse(order)
}

// NewBeerOrderResponse maps a persisted aggregate to the external view. The
// placement flow reuses it, so both operations return the same shape.
func NewBeerOrderResponse(order *beerorder.BeerOrder) (GetBeerOrderQueryResponse, error) {
	lines := order.Lines()
	lineViews := make([]BeerOrderLineResponse, 0, len(lines))
	for _, line := range lines {
		lineID, err := line.ID()
		if err != nil {
			return GetBeerOrderQueryResponse{}, err
		}
		lineViews = append(lineViews, BeerOrderLineResponse{
			OrderID:  lineID.OrderID,
			BeerID:   lineID.BeerID,
			BeerName: line.BeerName(),
			Quantity: line.Quantity(),
			Status:   line.Status().String(),
			Version:  line.Version(),
		})
	}

	return GetBeerOrderQueryResponse{
		ID:            order.ID(),
		Version:       order.Version(),
		CustomerRef:   order.CustomerRef(),
		PaymentAmount: order.PaymentAmount(),
		Status:        order.Status().String(),
		Lines:         lineViews,
		CreatedAt:     order.CreatedAt(),
		UpdatedAt:     order.UpdatedAt(),
	}, nil
}
