package queries

import (
	"errors"
	"fmt"
	"time"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBeerOrderQueryIsNotConstructed = errors.New(
	"GetBeerOrderQuery must be created via NewGetBeerOrderQuery constructor",
)

// GetBeerOrderQuery retrieves one order by surrogate id.
type GetBeerOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetBeerOrderQuery creates a query for the order with the given id.
func NewGetBeerOrderQuery(orderID int) (GetBeerOrderQuery, error) {
	if orderID <= 0 {
		return GetBeerOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not a valid order id", orderID))
	}
	return GetBeerOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBeerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetBeerOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetBeerOrderQuery) OrderID() int { return q.orderID }

// BeerOrderLineResponse is the external view of one order line.
type BeerOrderLineResponse struct {
	OrderID  int
	BeerID   int
	BeerName string
	Quantity int
	Status   string
	Version  int
}

// GetBeerOrderQueryResponse is the external view of an order: status as its
// name, lines always present and fully populated.
type GetBeerOrderQueryResponse struct {
	ID            int
	Version       int
	CustomerRef   string
	PaymentAmount *decimal.Decimal
	Status        string
	Lines         []BeerOrderLineResponse
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
