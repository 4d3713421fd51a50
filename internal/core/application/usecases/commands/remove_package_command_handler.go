package commands

import (
	"context"
)

// RemovePackageCommandHandler retires catalog packages.
type RemovePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewRemovePackageCommandHandler creates a handler for package removal.
func NewRemovePackageCommandHandler(uowFactory PackageUoWFactory) RemovePackageCommandHandler {
	return RemovePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package removal command.
func (h *RemovePackageCommandHandler) Handle(ctx context.Context, cmd RemovePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PackageRepository().Remove(ctx, cmd.PackageID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
