package commands

import (
	"errors"
	"fmt"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateBeerCommandIsNotConstructed = errors.New(
	"CreateBeerCommand must be created via NewCreateBeerCommand constructor",
)

// CreateBeerCommand represents a request to add a beer to the catalog.
type CreateBeerCommand struct {
	name           string
	style          string
	upc            string
	quantityOnHand int
	price          decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateBeerCommand creates a command to add a catalog record. Name, style
// and UPC are required; quantity on hand must not be negative; price must be
// positive.
func NewCreateBeerCommand(
	name, style, upc string, quantityOnHand int, price decimal.Decimal,
) (CreateBeerCommand, error) {
	cmd := CreateBeerCommand{}

	if name == "" {
		return cmd, errs.NewValueIsRequiredError("name")
	}
	if style == "" {
		return cmd, errs.NewValueIsRequiredError("style")
	}
	if upc == "" {
		return cmd, errs.NewValueIsRequiredError("upc")
	}
	if quantityOnHand < 0 {
		return cmd, errs.NewValueIsInvalidErrorWithCause(
			"quantityOnHand", fmt.Errorf("%d is negative", quantityOnHand))
	}
	if !price.IsPositive() {
		return cmd, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is not greater than 0", price))
	}

	return CreateBeerCommand{
		name:           name,
		style:          style,
		upc:            upc,
		quantityOnHand: quantityOnHand,
		price:          price,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBeerCommand) Validate() error {
	return c.guard.Validate(ErrCreateBeerCommandIsNotConstructed)
}

// Name returns the beer name.
func (c CreateBeerCommand) Name() string { return c.name }

// Style returns the beer style.
func (c CreateBeerCommand) Style() string { return c.style }

// UPC returns the universal product code.
func (c CreateBeerCommand) UPC() string { return c.upc }

// QuantityOnHand returns the initial stock level.
func (c CreateBeerCommand) QuantityOnHand() int { return c.quantityOnHand }

// Price returns the unit price.
func (c CreateBeerCommand) Price() decimal.Decimal { return c.price }
