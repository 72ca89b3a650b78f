package beerorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrBeerOrderIsNotConstructed is returned when a BeerOrder instance was not
// created through NewBeerOrder or RestoreBeerOrder.
var ErrBeerOrderIsNotConstructed = errors.New("BeerOrder must be created via NewBeerOrder constructor")

// BeerOrder is the aggregate root of the order workflow. It exclusively owns
// an ordered collection of BeerOrderLines: the lines are persisted and loaded
// together with the order, removing a line from the collection deletes its
// row, and deleting the order deletes all its lines.
//
// Invariants:
//   - customerRef is non-blank; it is a free-text reference, deliberately not
//     a foreign key to a Customer row
//   - a single order never holds two lines for the same beer (the composite
//     line key makes that unrepresentable)
//   - placement assigns StatusNew; no transition happens in this service
//   - identity is the surrogate id assigned by the store; transient orders
//     are never equal to each other
type BeerOrder struct {
	id            int
	version       int
	customerRef   string
	paymentAmount *decimal.Decimal
	status        Status
	lines         []*BeerOrderLine
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewBeerOrder creates a transient order in StatusNew with no payment amount
// and an empty line collection. The customerRef is stored verbatim.
func NewBeerOrder(customerRef string) (*BeerOrder, error) {
	if strings.TrimSpace(customerRef) == "" {
		return nil, errs.NewValueIsRequiredError("customerRef")
	}

	return &BeerOrder{
		customerRef:   customerRef,
		status:        StatusNew,
		isConstructed: true,
	}, nil
}

// RestoreBeerOrder reconstructs a persisted order aggregate from storage,
// lines included.
func RestoreBeerOrder(
	id, version int,
	customerRef string,
	paymentAmount *decimal.Decimal,
	status Status,
	lines []*BeerOrderLine,
	createdAt, updatedAt time.Time,
) (*BeerOrder, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a persisted id", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewBeerOrder(customerRef)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if line == nil || !line.isConstructed {
			return nil, errs.NewPreconditionViolatedError("restored order contains an unconstructed line")
		}
		if line.orderID != id {
			return nil, errs.NewPreconditionViolatedError(
				fmt.Sprintf("line for beerId %d belongs to order %d, not %d", line.beerID, line.orderID, id))
		}
	}

	o.id = id
	o.version = version
	o.paymentAmount = paymentAmount
	o.status = status
	o.lines = lines
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the BeerOrder was created via its constructor.
func (o *BeerOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrBeerOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by surrogate id. Transient (unsaved) orders are
// never equal to each other.
func (o *BeerOrder) IsEqual(other *BeerOrder) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// AddLine builds a line for the given resolved beer and attaches it to the
// order. The caller must already have confirmed that the beer exists in the
// catalog; see newLine for the precondition semantics. Attaching a second
// line for the same beer is rejected, since the composite line key cannot
// represent it.
func (o *BeerOrder) AddLine(b *beer.Beer, quantity int) error {
	line, err := newLine(b, quantity)
	if err != nil {
		return err
	}

	for _, existing := range o.lines {
		if existing.beerID == line.beerID {
			return errs.NewValueIsInvalidErrorWithCause(
				"beerId", fmt.Errorf("order already contains a line for beerId %d", line.beerID))
		}
	}

	if o.id != 0 {
		line.assignOrderID(o.id)
	}
	o.lines = append(o.lines, line)
	return nil
}

// RemoveLine detaches the line for the given beer from the collection. The
// orphaned row is deleted on the next save (orphan removal).
func (o *BeerOrder) RemoveLine(beerID int) error {
	for i, line := range o.lines {
		if line.beerID == beerID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("beerId", beerID)
}

// AssignID sets the surrogate id after the store has inserted the row, and
// completes every line's composite key with it. Assigning twice is a
// programming error.
func (o *BeerOrder) AssignID(id int) error {
	if o.id != 0 {
		return errs.NewPreconditionViolatedError(fmt.Sprintf("order already has id %d", o.id))
	}
	if id <= 0 {
		return errs.NewPreconditionViolatedError(fmt.Sprintf("%d is not a valid assigned id", id))
	}

	o.id = id
	for _, line := range o.lines {
		line.assignOrderID(id)
	}
	return nil
}

// ID returns the surrogate id, or 0 for a transient order.
func (o *BeerOrder) ID() int { return o.id }

// Version returns the optimistic-concurrency counter.
func (o *BeerOrder) Version() int { return o.version }

// CustomerRef returns the free-text customer reference.
func (o *BeerOrder) CustomerRef() string { return o.customerRef }

// PaymentAmount returns the optional payment amount (nil when unset; always
// nil for orders placed by this service).
func (o *BeerOrder) PaymentAmount() *decimal.Decimal { return o.paymentAmount }

// Status returns the order lifecycle state.
func (o *BeerOrder) Status() Status { return o.status }

// Lines returns the owned line collection in insertion order. The returned
// slice is a copy; the lines themselves are the aggregate's own.
func (o *BeerOrder) Lines() []*BeerOrderLine {
	lines := make([]*BeerOrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// CreatedAt returns the creation timestamp assigned by the store.
func (o *BeerOrder) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last-update timestamp assigned by the store.
func (o *BeerOrder) UpdatedAt() time.Time { return o.updatedAt }
