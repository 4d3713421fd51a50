// Package order provides domain entities and business logic for purchase
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding customer contact data, the catalog
//     package snapshot, the payment reference, and the lifecycle status
//   - Status: a state machine that enforces valid status transitions
//
// Key business rules:
//   - Orders are created in Pending status with a payment reference already
//     assigned; no order is ever observable without one
//   - Catalog package fields (name, quantity, price) are snapshotted at
//     creation and never change afterwards, even if the catalog entry does
//   - Status follows pending -> paid -> processing -> completed, with
//     cancellation allowed from any non-terminal state
//   - Completed and Cancelled are terminal; records in those states are frozen
//   - Requesting the status an order already has is an idempotent no-op
//   - Orders are never deleted; cancellation preserves the audit trail
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
