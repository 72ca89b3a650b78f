package queries

import (
	"errors"
	"fmt"
	"time"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBeerQueryIsNotConstructed = errors.New(
	"GetBeerQuery must be created via NewGetBeerQuery constructor",
)

// GetBeerQuery retrieves one catalog record by surrogate id.
type GetBeerQuery struct {
	beerID int

	guard guard.ConstructorGuard
}

// NewGetBeerQuery creates a query for the beer with the given id.
func NewGetBeerQuery(beerID int) (GetBeerQuery, error) {
	if beerID <= 0 {
		return GetBeerQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"beerId", fmt.Errorf("%d is not a valid beer id", beerID))
	}
	return GetBeerQuery{beerID: beerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBeerQuery) Validate() error {
	return q.guard.Validate(ErrGetBeerQueryIsNotConstructed)
}

// BeerID returns the requested beer id.
func (q GetBeerQuery) BeerID() int { return q.beerID }

// BeerResponse is the external view of a catalog record.
type BeerResponse struct {
	ID             int
	Version        int
	Name           string
	Style          string
	UPC            string
	QuantityOnHand int
	Price          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBeerResponse maps a catalog record to its external view. The catalog
// command flows reuse it.
func NewBeerResponse(b *beer.Beer) BeerResponse {
	return BeerResponse{
		ID:             b.ID(),
		Version:        b.Version(),
		Name:           b.Name(),
		Style:          b.Style(),
		UPC:            b.UPC(),
		QuantityOnHand: b.QuantityOnHand(),
		Price:          b.Price(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}
