package queries

import "context"

// GetBeerQueryHandler loads one catalog record and maps it to the external view.
type GetBeerQueryHandler struct {
	beers BeerReader
}

// NewGetBeerQueryHandler creates a handler for single-beer retrieval.
func NewGetBeerQueryHandler(beers BeerReader) GetBeerQueryHandler {
	return GetBeerQueryHandler{beers: beers}
}

// Handle returns the beer view, or a not-found error when the id is absent.
func (h GetBeerQueryHandler) Handle(ctx context.Context, query GetBeerQuery) (BeerResponse, error) {
	if err := query.Validate(); err != nil {
		return BeerResponse{}, err
	}

	b, err := h.beers.Get(ctx, query.BeerID())
	if err != nil {
		return BeerResponse{}, err
	}

	return NewBeerResponse(b), nil
}
