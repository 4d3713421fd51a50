package commands

import (
	"context"

	"instagrow/internal/core/domain/model/catalog"
)

// UpdatePackageCommandHandler replaces the fields of catalog packages.
type UpdatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewUpdatePackageCommandHandler creates a handler for package updates.
func NewUpdatePackageCommandHandler(uowFactory PackageUoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package update command and returns the updated package.
// The package keeps its identifier and provisioning timestamp; every other
// field comes from the command.
func (h *UpdatePackageCommandHandler) Handle(
	ctx context.Context, cmd UpdatePackageCommand,
) (*catalog.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	repo := uow.PackageRepository()

	existing, err := repo.Get(ctx, cmd.PackageID())
	if err != nil {
		return nil, err
	}

	fields := cmd.Fields()
	updated, err := catalog.RestorePackage(
		existing.ID(),
		fields.Name(), fields.Description(),
		fields.PackageType(), fields.Quantity(), fields.Price(),
		fields.DeliveryTime(), fields.Popular(),
		existing.CreatedAt(),
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

	if err = uow.PackageRepository().Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
