package commands

import (
	"errors"
	"fmt"

	"brewery/internal/pkg/errs"
	"brewery/internal/pkg/guard"
)

var ErrDeleteBeerCommandIsNotConstructed = errors.New(
	"DeleteBeerCommand must be created via NewDeleteBeerCommand constructor",
)

// DeleteBeerCommand represents a request to remove a beer from the catalog.
type DeleteBeerCommand struct {
	beerID int

	guard guard.ConstructorGuard
}

// NewDeleteBeerCommand creates a command to delete the beer with the given id.
func NewDeleteBeerCommand(beerID int) (DeleteBeerCommand, error) {
	if beerID <= 0 {
		return DeleteBeerCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"beerId", fmt.Errorf("%d is not a valid beer id", beerID))
	}

	return DeleteBeerCommand{
		beerID: beerID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBeerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBeerCommandIsNotConstructed)
}

// BeerID returns the id of the beer to delete.
func (c DeleteBeerCommand) BeerID() int { return c.beerID }
