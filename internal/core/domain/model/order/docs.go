// Package order provides domain entities and business logic for order tracking.
// It implements the Order aggregate root with lifecycle management and
// forward-only status transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, notes, and lifecycle
//   - Status: A state machine enforcing the Placed -> Packed -> Shipped -> Delivered pipeline
//   - HistoryEntry: An append-only ledger entry recording when each status was first reached
//
// Key business rules:
//   - Orders must have a valid identifier and non-empty product, customer, and address fields
//   - Status never regresses; Delivered is terminal
//   - The history holds at most one entry per status (idempotent on repeated updates)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
