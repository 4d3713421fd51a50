package commands

import (
	"context"

	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
)

// CreatePackageCommandHandler provisions new catalog packages.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package provisioning.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package creation command and returns the new package.
func (h *CreatePackageCommandHandler) Handle(
	ctx context.Context, cmd CreatePackageCommand,
) (*catalog.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newPackage, err := catalog.NewPackage(
		kernel.NewUUID(),
		cmd.Name(), cmd.Description(),
		cmd.PackageType(), cmd.Quantity(), cmd.Price(),
		cmd.DeliveryTime(), cmd.Popular(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, newPackage); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newPackage, nil
}
