package commands

import (
	"context"
	"errors"

	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"
	"instagrow/internal/core/ports"
	"instagrow/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Creation resolves the chosen catalog package, snapshots its display fields,
// obtains a payment reference from the external collaborator, and persists
// the order in pending status. The payment reference call happens before any
// transaction is opened so the potentially-blocking collaborator never holds
// a store lock, and a collaborator failure aborts creation with nothing
// persisted.
type CreateOrderCommandHandler struct {
	uowFactory   UoWFactory
	payReference ports.PaymentReferenceGenerator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	payReference ports.PaymentReferenceGenerator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		payReference: payReference,
	}
}

// Handle processes the order creation command and returns the created order.
//
// Errors:
//   - ValueIsInvalidError when the package id resolves to no catalog entry
//   - PaymentReferenceError when the payment collaborator fails
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	pkg, err := uow.PackageRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("packageID", err)
		}
		return nil, err
	}

	reference, err := h.payReference.Generate(ctx, ports.PaymentDraft{
		CustomerName: cmd.CustomerName(),
		Amount:       pkg.Price(),
	})
	if err != nil {
		return nil, errs.NewPaymentReferenceError(err)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerName(), cmd.CustomerEmail(), cmd.CustomerPhone(), cmd.InstagramUsername(),
		pkg.ID(), pkg.Name(), pkg.Quantity(), pkg.Price(),
		reference.PixCode, reference.QRCode, reference.PaymentID,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
