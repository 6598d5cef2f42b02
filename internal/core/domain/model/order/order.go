package order

import (
	"errors"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyDelivered signals that an order sits at the terminal
	// pipeline stage and cannot advance further. This is an expected
	// boundary condition; callers typically branch on it rather than fail.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// HistoryEntry records the first moment an order reached a given status.
// Entries are append-only and there is at most one entry per status value.
type HistoryEntry struct {
	status     Status
	occurredAt time.Time
}

// RestoreHistoryEntry reconstructs a history entry from persisted data.
func RestoreHistoryEntry(status Status, occurredAt time.Time) HistoryEntry {
	return HistoryEntry{status: status, occurredAt: occurredAt}
}

// Status returns the status this entry records.
func (h HistoryEntry) Status() Status {
	return h.status
}

// OccurredAt returns the time the status was first reached.
func (h HistoryEntry) OccurredAt() time.Time {
	return h.occurredAt
}

// Order represents a tracked order. It is the aggregate root that manages
// the order lifecycle from placement through delivery.
//
// Order follows these invariants:
//   - Must have a valid identifier and non-empty product, customer, and address fields
//   - Status only ever moves forward (no regression)
//   - The status history holds at most one entry per status, created the
//     first time that status is reached
//   - Delivered is terminal
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id              kernel.OrderID
	productName     string
	customerName    string
	deliveryAddress string
	status          Status
	createdAt       time.Time
	notes           string
	statusHistory   []HistoryEntry

	isConstructed bool
}

// NewOrder creates a new Order in the Placed status with a single Placed
// history entry stamped at the current time.
//
// Parameters:
//   - id: Unique identifier for the order (must be constructed)
//   - productName, customerName, deliveryAddress: required non-empty text
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.OrderID, productName, customerName, deliveryAddress string) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Placed,
		createdAt:     now,
		statusHistory: []HistoryEntry{{status: Placed, occurredAt: now}},
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductName(productName),
		o.setCustomerName(customerName),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
//
// Unlike NewOrder it does not enforce the non-empty text invariants:
// imported collections are accepted as-is. The identifier and status
// are still validated so a corrupted record cannot produce an order
// that the state machine chokes on later.
func RestoreOrder(
	id kernel.OrderID,
	productName, customerName, deliveryAddress string,
	status Status,
	createdAt time.Time,
	notes string,
	statusHistory []HistoryEntry,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	history := make([]HistoryEntry, len(statusHistory))
	copy(history, statusHistory)

	return &Order{
		id:              id,
		productName:     productName,
		customerName:    customerName,
		deliveryAddress: deliveryAddress,
		status:          status,
		createdAt:       createdAt,
		notes:           notes,
		statusHistory:   history,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ProductName returns the ordered product's name.
func (o *Order) ProductName() string {
	return o.productName
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// DeliveryAddress returns the free-form delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current fulfillment stage.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp. It is fixed at creation
// and never modified.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Notes returns the free-form notes attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// StatusHistory returns a copy of the status history, ordered by the time
// each status was first reached. The returned slice may be modified freely
// without affecting the aggregate.
func (o *Order) StatusHistory() []HistoryEntry {
	history := make([]HistoryEntry, len(o.statusHistory))
	copy(history, o.statusHistory)
	return history
}

// NextStatus returns the stage that a single-step advance would reach.
// The boolean result is false when the order is already Delivered.
func (o *Order) NextStatus() (Status, bool) {
	return o.status.Next()
}

// ChangeStatus moves the order to newStatus.
//
// This method enforces the store-level transition guard:
//   - regression (newStatus before the current status) is rejected
//   - out-of-range values are rejected
//   - forward skips are permitted
//
// A history entry for newStatus is appended only when none exists yet, so
// repeated calls with the same target are idempotent: the history length
// for any status never exceeds one. On rejection no mutation occurs.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := o.status.ValidateTransition(newStatus); err != nil {
		return err
	}

	o.status = newStatus
	if !o.hasHistoryFor(newStatus) {
		o.statusHistory = append(o.statusHistory, HistoryEntry{
			status:     newStatus,
			occurredAt: time.Now().UTC(),
		})
	}
	return nil
}

// Advance moves the order exactly one stage forward.
//
// Returns ErrOrderAlreadyDelivered when the order sits at the terminal
// stage; the order is left unchanged in that case.
func (o *Order) Advance() error {
	next, ok := o.status.Next()
	if !ok {
		return ErrOrderAlreadyDelivered
	}
	return o.ChangeStatus(next)
}

// SetNotes replaces the order's notes. Notes are free-form and may be empty;
// they change independently of the status pipeline.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

func (o *Order) hasHistoryFor(status Status) bool {
	for _, entry := range o.statusHistory {
		if entry.status == status {
			return true
		}
	}
	return false
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	o.productName = productName
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
