package ports

import (
	"context"
	"errors"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"
)

// ErrStatusConflict is returned by UpdateStatus when the order's stored status
// no longer matches the expected one, i.e. a concurrent update won the race.
// Callers re-read the record and surface an invalid-transition error against
// the now-current status.
var ErrStatusConflict = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-and-update only: no method deletes a record, because the
// order set is the system's audit trail.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders, newest first. The ordering is stable
	// within one call.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus persists the aggregate's status using a compare-and-swap
	// against expected: the write only applies while the stored status still
	// equals expected. Returns ErrStatusConflict when the swap loses to a
	// concurrent update, and an ObjectNotFoundError when the id is unknown.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
