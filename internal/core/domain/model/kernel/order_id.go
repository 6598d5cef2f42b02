package kernel

import (
	"fmt"
	"strings"
	"time"

	"ordertracking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// orderIDPrefix marks identifiers generated by this system. Identifiers
// imported from external collections may carry any non-empty value.
const orderIDPrefix = "ORD"

// OrderID is a value object that represents the opaque unique identifier
// of an order. Identifiers are generated from a high-resolution timestamp
// plus a random suffix; collisions are accepted as negligible for a
// single-writer store.
//
// The zero value of OrderID is invalid and must be constructed using
// NewOrderID or OrderIDFromString.
//
// OrderID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Generate a fresh identifier
//	id := kernel.NewOrderID()
//
//	// Reconstruct from its string representation
//	id, err := kernel.OrderIDFromString("ORD1700000000000a1b2c3")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID generates a fresh order identifier in the form
// "ORD<unix-milliseconds><random-suffix>". The suffix is drawn from a
// random UUID so identifiers created within the same millisecond stay distinct.
func NewOrderID() OrderID {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return OrderID{
		value: fmt.Sprintf("%s%d%s", orderIDPrefix, time.Now().UnixMilli(), suffix),
	}
}

// OrderIDFromString reconstructs an OrderID from its string representation.
// Any non-empty value is accepted: identifiers in imported collections are
// opaque and need not follow the generated format.
//
// Returns an error if the string is empty or blank.
func OrderIDFromString(s string) (OrderID, error) {
	if strings.TrimSpace(s) == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: s}, nil
}

// String returns the identifier's string representation.
// This method implements the fmt.Stringer interface.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
