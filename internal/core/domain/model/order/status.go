package order

import (
	"fmt"

	"ordertracking/internal/pkg/errs"
)

// Status represents the fulfillment stage of an order.
// It implements a forward-only state machine: statuses are totally ordered
// by pipeline progress and an order never moves backwards.
//
// State transitions:
//
//	Placed ──> Packed ──> Shipped ──> Delivered
//
// Delivered is terminal; there is no transition out of it.
//
// The integer values are a stable wire contract (0=Placed .. 3=Delivered)
// and must not be reordered.
type Status int

const (
	// Placed is the initial status assigned at order creation.
	Placed Status = iota

	// Packed indicates the order has been packed and awaits shipping.
	Packed

	// Shipped indicates the order is in transit.
	Shipped

	// Delivered indicates the order reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Placed:    "Placed",
		Packed:    "Packed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, Packed, Shipped, Delivered.
// Values outside 0..3 are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is out of range
//
// This method is used to ensure Status values from external sources
// (e.g., persisted blob, API) are valid before use.
func (s Status) Validate() error {
	if s < Placed || s > Delivered {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Placed), int(Delivered))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for out-of-range values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is the final pipeline stage.
func (s Status) IsTerminal() bool {
	return s >= Delivered
}

// Next returns the following pipeline stage.
//
// Returns:
//   - (status+1, true) when a further stage exists
//   - (Delivered, false) when the status is already terminal
//
// Reaching the terminal state is an expected boundary condition,
// not an error, hence the boolean result.
func (s Status) Next() (Status, bool) {
	if s.IsTerminal() {
		return Delivered, false
	}
	return s + 1, true
}

// ValidateTransition checks whether the status may be replaced by newStatus.
//
// Rejected transitions:
//   - newStatus out of the valid range
//   - newStatus preceding the current status (regression)
//
// Forward skips (e.g. Placed directly to Shipped) are allowed: callers that
// must advance exactly one stage use Next. Setting the same status again is
// allowed and treated as a no-op by the aggregate.
func (s Status) ValidateTransition(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if newStatus < s {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move back from %s to %s", s, newStatus),
		)
	}
	return nil
}
