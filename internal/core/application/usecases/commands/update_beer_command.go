package commands

import (
	"errors"
	"fmt"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateBeerCommandIsNotConstructed = errors.New(
	"UpdateBeerCommand must be created via NewUpdateBeerCommand constructor",
)

// UpdateBeerCommand represents a full replacement of a catalog record's
// mutable attributes.
type UpdateBeerCommand struct {
	beerID         int
	name           string
	style          string
	upc            string
	quantityOnHand int
	price          decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateBeerCommand creates a command to update the beer with the given id.
func NewUpdateBeerCommand(
	beerID int, name, style, upc string, quantityOnHand int, price decimal.Decimal,
) (UpdateBeerCommand, error) {
	cmd := UpdateBeerCommand{}

	if beerID <= 0 {
		return cmd, errs.NewValueIsInvalidErrorWithCause(
			"beerId", fmt.Errorf("%d is not a valid beer id", beerID))
	}
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

	return UpdateBeerCommand{
		beerID:         beerID,
		name:           name,
		style:          style,
		upc:            upc,
		quantityOnHand: quantityOnHand,
		price:          price,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBeerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBeerCommandIsNotConstructed)
}

// BeerID returns the id of the beer to update.
func (c UpdateBeerCommand) BeerID() int { return c.beerID }

// Name returns the new beer name.
func (c UpdateBeerCommand) Name() string { return c.name }

// Style returns the new beer style.
func (c UpdateBeerCommand) Style() string { return c.style }

// UPC returns the new universal product code.
func (c UpdateBeerCommand) UPC() string { return c.upc }

// QuantityOnHand returns the new stock level.
func (c UpdateBeerCommand) QuantityOnHand() int { return c.quantityOnHand }

// Price returns the new unit price.
func (c UpdateBeerCommand) Price() decimal.Decimal { return c.price }
