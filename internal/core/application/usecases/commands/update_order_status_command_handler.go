package commands

import (
	"context"
	"errors"

	"instagrow/internal/core/domain/model/order"
	"instagrow/internal/core/ports"
	"instagrow/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies lifecycle transitions to orders.
//
// Concurrent updates on the same order are serialized by a compare-and-swap
// on the stored status: the repository only writes while the row still holds
// the status the transition started from. When two requests race, exactly one
// wins; the loser gets an InvalidStatusTransitionError carrying the status
// the winner left behind.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the updated order.
//
// A request for the status the order already has is an idempotent no-op:
// it succeeds, writes nothing, and returns the record unchanged. The same
// rule applies when a concurrent update already moved the order to the
// requested status.
//
// Errors:
//   - ObjectNotFoundError when the order id is unknown
//   - InvalidStatusTransitionError when the lifecycle forbids the move,
//     including the case where a concurrent update won the race
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if aggregate.Status() == previous {
		return aggregate, nil
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().UpdateStatus(ctx, aggregate, previous); err != nil {
		if errors.Is(err, ports.ErrStatusConflict) {
			return h.resolveConflict(ctx, cmd, err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// resolveConflict re-reads the order after a lost compare-and-swap. If the
// winning update landed on the requested status the retry is idempotent and
// succeeds; otherwise the transition is rejected against the now-current
// status so the caller can re-fetch and pick a legal target.
func (h *UpdateOrderStatusCommandHandler) resolveConflict(
	ctx context.Context, cmd UpdateOrderStatusCommand, cause error,
) (*order.Order, error) {
	current, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if current.Status() == cmd.Status() {
		return current, nil
	}

	return nil, errs.NewInvalidStatusTransitionErrorWithCause(
		current.Status().String(), cmd.Status().String(), cause)
}
