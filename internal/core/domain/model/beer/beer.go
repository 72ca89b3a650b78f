package beer

import (
	"errors"
	"fmt"
	"time"

	"brewery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrBeerIsNotConstructed is returned when a Beer instance was not created
// through NewBeer or RestoreBeer.
var ErrBeerIsNotConstructed = errors.New("Beer must be created via NewBeer constructor")

// Beer is a catalog record. It is referenced, never owned, by order lines:
// deleting an order does not touch the beers it referenced.
//
// Invariants:
//   - name, style and UPC are non-empty; UPC is unique across the catalog
//     (uniqueness is enforced at the service layer before create/update)
//   - quantity on hand is never negative
//   - price is a positive fixed-point decimal with 2 fractional digits
//   - identity is the surrogate id assigned by the store; a transient beer
//     (id 0) is never equal to any other beer
type Beer struct {
	id             int
	version        int
	name           string
	style          string
	upc            string
	quantityOnHand int
	price          decimal.Decimal
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewBeer creates a transient catalog record. The surrogate id and version
// are assigned by the store on first save.
func NewBeer(name, style, upc string, quantityOnHand int, price decimal.Decimal) (*Beer, error) {
	b := &Beer{isConstructed: true}

	if err := errors.Join(
		b.setName(name),
		b.setStyle(style),
		b.setUPC(upc),
		b.setQuantityOnHand(quantityOnHand),
		b.setPrice(price),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBeer reconstructs a persisted catalog record from storage.
func RestoreBeer(
	id, version int,
	name, style, upc string,
	quantityOnHand int,
	price decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Beer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a persisted id", id))
	}

	b, err := NewBeer(name, style, upc, quantityOnHand, price)
	if err != nil {
		return nil, err
	}

	b.id = id
	b.version = version
	b.createdAt = createdAt
	b.updatedAt = updatedAt
	return b, nil
}

// Validate ensures the Beer was created via its constructor.
func (b *Beer) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBeerIsNotConstructed
	}
	return nil
}

// IsEqual compares two beers by surrogate id. Transient (unsaved) instances
// are never equal to each other.
func (b *Beer) IsEqual(other *Beer) bool {
	return other != nil && b.id != 0 && b.id == other.id
}

// ChangeDetails replaces the mutable attributes of the record, keeping
// identity and version untouched. Used by the catalog update flow.
func (b *Beer) ChangeDetails(name, style, upc string, quantityOnHand int, price decimal.Decimal) error {
	return errors.Join(
		b.setName(name),
		b.setStyle(style),
		b.setUPC(upc),
		b.setQuantityOnHand(quantityOnHand),
		b.setPrice(price),
	)
}

// AssignID sets the surrogate id after the store has inserted the row.
// Assigning twice or assigning a non-positive id is a programming error.
func (b *Beer) AssignID(id int) error {
	if b.id != 0 {
		return errs.NewPreconditionViolatedError(fmt.Sprintf("beer already has id %d", b.id))
	}
	if id <= 0 {
		return errs.NewPreconditionViolatedError(fmt.Sprintf("%d is not a valid assigned id", id))
	}
	b.id = id
	return nil
}

// ID returns the surrogate id, or 0 for a transient record.
func (b *Beer) ID() int {
	return b.id
}

// Version returns the optimistic-concurrency counter.
func (b *Beer) Version() int {
	return b.version
}

// Name returns the beer name.
func (b *Beer) Name() string {
	return b.name
}

// Style returns the beer style.
func (b *Beer) Style() string {
	return b.style
}

// UPC returns the universal product code.
func (b *Beer) UPC() string {
	return b.upc
}

// QuantityOnHand returns the stock level.
func (b *Beer) QuantityOnHand() int {
	return b.quantityOnHand
}

// Price returns the unit price.
func (b *Beer) Price() decimal.Decimal {
	return b.price
}

// CreatedAt returns the creation timestamp assigned by the store.
func (b *Beer) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns the last-update timestamp assigned by the store.
func (b *Beer) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Beer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Beer) setStyle(style string) error {
	if style == "" {
		return errs.NewValueIsRequiredError("style")
	}
	b.style = style
	return nil
}

func (b *Beer) setUPC(upc string) error {
	if upc == "" {
		return errs.NewValueIsRequiredError("upc")
	}
	b.upc = upc
	return nil
}

func (b *Beer) setQuantityOnHand(quantityOnHand int) error {
	if quantityOnHand < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityOnHand", fmt.Errorf("%d is negative", quantityOnHand))
	}
	b.quantityOnHand = quantityOnHand
	return nil
}

func (b *Beer) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is not greater than 0", price))
	}
	b.price = price.Round(2)
	return nil
}
