package beerorder

import (
	"fmt"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/pkg/errs"
)

// LineID is the composite identity of an order line: the owning order's
// surrogate id paired with the referenced beer's id. A line only becomes
// addressable once the owning order has received its id, so LineID values
// are constructed after that assignment, never before.
type LineID struct {
	OrderID int
	BeerID  int
}

// NewLineID creates a composite line identity. Both components must be
// persisted (positive) ids.
func NewLineID(orderID, beerID int) (LineID, error) {
	if orderID <= 0 {
		return LineID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not a persisted id", orderID))
	}
	if beerID <= 0 {
		return LineID{}, errs.NewValueIsInvalidErrorWithCause(
			"beerId", fmt.Errorf("%d is not a persisted id", beerID))
	}
	return LineID{OrderID: orderID, BeerID: beerID}, nil
}

// IsEqual compares two composite line identities component-wise.
func (id LineID) IsEqual(other LineID) bool {
	return id.OrderID == other.OrderID && id.BeerID == other.BeerID
}

// BeerOrderLine is one item of a beer order. It is exclusively owned by its
// order: it has no life of its own, and removing it from the order's
// collection deletes the underlying row on the next save.
//
// The line keeps a read-only snapshot of the referenced beer (id and name)
// taken at build time, which is what the external view exposes.
type BeerOrderLine struct {
	orderID  int // 0 until the owning order is persisted
	beerID   int
	beerName string
	quantity int
	version  int
	status   LineStatus

	isConstructed bool
}

// newLine builds a line for the given resolved catalog record. Callers have
// already validated quantity and catalog membership at the command boundary;
// a nil or transient beer here is therefore a defect in the caller's
// validation sequencing, not a user-facing condition.
func newLine(b *beer.Beer, quantity int) (*BeerOrderLine, error) {
	if b == nil || b.Validate() != nil {
		return nil, errs.NewPreconditionViolatedError("order line references an unresolved beer")
	}
	if b.ID() <= 0 {
		return nil, errs.NewPreconditionViolatedError("order line references a transient beer")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("quantity must be > 0 for beerId %d", b.ID()))
	}

	return &BeerOrderLine{
		beerID:        b.ID(),
		beerName:      b.Name(),
		quantity:      quantity,
		status:        LineStatusNew,
		isConstructed: true,
	}, nil
}

// RestoreBeerOrderLine reconstructs a persisted line from storage.
func RestoreBeerOrderLine(
	orderID, beerID, version int,
	beerName string,
	quantity int,
	status LineStatus,
) (*BeerOrderLine, error) {
	if _, err := NewLineID(orderID, beerID); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("quantity must be > 0 for beerId %d", beerID))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &BeerOrderLine{
		orderID:       orderID,
		beerID:        beerID,
		beerName:      beerName,
		quantity:      quantity,
		version:       version,
		status:        status,
		isConstructed: true,
	}, nil
}

// ID returns the composite identity. It fails while the owning order is still
// transient, since the order-id component does not exist yet.
func (l *BeerOrderLine) ID() (LineID, error) {
	if l.orderID == 0 {
		return LineID{}, errs.NewPreconditionViolatedError(
			fmt.Sprintf("line for beerId %d is not addressable before its order is persisted", l.beerID))
	}
	return LineID{OrderID: l.orderID, BeerID: l.beerID}, nil
}

// BeerID returns the referenced beer's id (the stable half of the key).
func (l *BeerOrderLine) BeerID() int { return l.beerID }

// BeerName returns the beer name snapshot taken when the line was built.
func (l *BeerOrderLine) BeerName() string { return l.beerName }

// Quantity returns the ordered quantity.
func (l *BeerOrderLine) Quantity() int { return l.quantity }

// Version returns the optimistic-concurrency counter.
func (l *BeerOrderLine) Version() int { return l.version }

// Status returns the line lifecycle state.
func (l *BeerOrderLine) Status() LineStatus { return l.status }

// assignOrderID completes the composite key once the owning order has been
// assigned its surrogate id.
func (l *BeerOrderLine) assignOrderID(orderID int) {
	l.orderID = orderID
}
