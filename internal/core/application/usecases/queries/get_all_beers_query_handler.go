package queries

import "context"

// GetAllBeersQueryHandler lists the whole catalog.
type GetAllBeersQueryHandler struct {
	beers BeerReader
}

// NewGetAllBeersQueryHandler creates a handler for catalog listing.
func NewGetAllBeersQueryHandler(beers BeerReader) GetAllBeersQueryHandler {
	return GetAllBeersQueryHandler{beers: beers}
}

// Handle returns every catalog record ordered by id. An empty catalog yields
// an empty slice, not nil.
func (h GetAllBeersQueryHandler) Handle(ctx context.Context, query GetAllBeersQuery) ([]BeerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.beers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BeerResponse, 0, len(all))
	for _, b := range all {
		views = append(views, NewBeerResponse(b))
	}
	return views, nil
}
