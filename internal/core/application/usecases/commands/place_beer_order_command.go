package commands

import (
	"errors"
	"fmt"
	"strings"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"
)

var ErrPlaceBeerOrderCommandIsNotConstructed = errors.New(
	"PlaceBeerOrderCommand must be created via NewPlaceBeerOrderCommand constructor",
)

// OrderItem is one requested (beer id, quantity) pair of a placement request.
type OrderItem struct {
	BeerID   int
	Quantity int
}

// PlaceBeerOrderCommand represents a validated request to place a beer order.
// Construction rejects every invalid-argument condition before any catalog
// lookup or persistence happens: blank customerRef, empty item list,
// non-positive beer ids or quantities, and duplicate beer ids (a single order
// cannot contain two lines for the same beer).
type PlaceBeerOrderCommand struct {
	customerRef string
	items       []OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceBeerOrderCommand creates a command to place an order for the given
// customer reference and items. Quantity errors name the offending beer id.
func NewPlaceBeerOrderCommand(customerRef string, items []OrderItem) (PlaceBeerOrderCommand, error) {
	if strings.TrimSpace(customerRef) == "" {
		return PlaceBeerOrderCommand{}, errs.NewValueIsRequiredError("customerRef")
	}
	if len(items) == 0 {
		return PlaceBeerOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.BeerID <= 0 {
			return PlaceBeerOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"beerId", fmt.Errorf("%d is not a valid beer id", item.BeerID))
		}
		if item.Quantity <= 0 {
			return PlaceBeerOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("quantity must be > 0 for beerId %d", item.BeerID))
		}
		if seen[item.BeerID] {
			return PlaceBeerOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"beerId", fmt.Errorf("duplicate item for beerId %d", item.BeerID))
		}
		seen[item.BeerID] = true
	}

	return PlaceBeerOrderCommand{
		customerRef: customerRef,
		items:       append([]OrderItem(nil), items...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBeerOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBeerOrderCommandIsNotConstructed)
}

// CustomerRef returns the free-text customer reference, stored verbatim.
func (c PlaceBeerOrderCommand) CustomerRef() string {
	return c.customerRef
}

// Items returns the requested items in request order.
func (c PlaceBeerOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

// BeerIDs returns the distinct requested beer ids in request order.
func (c PlaceBeerOrderCommand) BeerIDs() []int {
	ids := make([]int, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.BeerID)
	}
	return ids
}
