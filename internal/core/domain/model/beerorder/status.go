package beerorder

import (
	"fmt"

	"brewery/internal/pkg/errs"
)

// Status represents the lifecycle state of a beer order.
//
// The full enumeration exists for the order lifecycle, but order placement
// only ever assigns StatusNew; transitions to the later states belong to
// allocation and delivery workflows that live outside this service.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status assigned when an order is placed.
	StatusNew

	StatusValidationPending
	StatusValidated
	StatusAllocationPending
	StatusAllocated
	StatusPickedUp
	StatusDelivered
	StatusCancelled
)

// statusNames maps Status values to the names used in storage and on the wire.
func statusNames() map[Status]string {
	return map[Status]string{
		StatusNew:               "NEW",
		StatusValidationPending: "VALIDATION_PENDING",
		StatusValidated:         "VALIDATED",
		StatusAllocationPending: "ALLOCATION_PENDING",
		StatusAllocated:         "ALLOCATED",
		StatusPickedUp:          "PICKED_UP",
		StatusDelivered:         "DELIVERED",
		StatusCancelled:         "CANCELLED",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the storage/wire name of the status, e.g. "NEW".
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// StatusFromString parses a storage/wire status name.
func StatusFromString(name string) (Status, error) {
	for s, n := range statusNames() {
		if n == name {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", name))
}

// LineStatus represents the lifecycle state of a single order line.
// Placement only assigns LineStatusNew; the other states are reserved for
// allocation workflows outside this service.
type LineStatus int

const (
	LineStatusUnknown LineStatus = iota
	LineStatusNew
	LineStatusAllocated
	LineStatusCancelled
)

func lineStatusNames() map[LineStatus]string {
	return map[LineStatus]string{
		LineStatusNew:       "NEW",
		LineStatusAllocated: "ALLOCATED",
		LineStatusCancelled: "CANCELLED",
	}
}

// Validate checks that the LineStatus is one of the defined states.
func (s LineStatus) Validate() error {
	if _, ok := lineStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("lineStatus", fmt.Errorf("%d is not a valid line status", s))
	}
	return nil
}

// String returns the storage/wire name of the line status.
func (s LineStatus) String() string {
	if name, ok := lineStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// LineStatusFromString parses a storage/wire line status name.
func LineStatusFromString(name string) (LineStatus, error) {
	for s, n := range lineStatusNames() {
		if n == name {
			return s, nil
		}
	}
	return LineStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"lineStatus", fmt.Errorf("%q is not a valid line status", name))
}
